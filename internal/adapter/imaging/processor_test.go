package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessScalesDownLargePNG(t *testing.T) {
	p := NewProcessor(300, 300)

	out, err := p.Process(bytes.NewReader(pngOf(t, 1200, 600)), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)

	raw, err := io.ReadAll(out.Body)
	require.NoError(t, err)
	assert.Equal(t, int64(len(raw)), out.Size)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 150, cfg.Height)
}

func TestProcessKeepsSmallImages(t *testing.T) {
	src := pngOf(t, 100, 80)
	out, err := NewProcessor(300, 300).Process(bytes.NewReader(src), "image/png")
	require.NoError(t, err)

	raw, err := io.ReadAll(out.Body)
	require.NoError(t, err)
	assert.Equal(t, src, raw)
}

func TestProcessJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 800, 800)), nil))

	out, err := NewProcessor(400, 400).Process(&buf, "image/jpeg")
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(out.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 400, cfg.Width)
}

func TestProcessRejects(t *testing.T) {
	p := NewProcessor(300, 300)

	_, err := p.Process(bytes.NewReader([]byte("not an image")), "image/png")
	assert.Error(t, err)

	_, err = p.Process(bytes.NewReader(pngOf(t, 10, 10)), "image/jpeg")
	assert.Error(t, err)
}

func TestProcessPassesThroughOtherFormats(t *testing.T) {
	src := []byte("RIFF....WEBPVP8 ")
	out, err := NewProcessor(300, 300).Process(bytes.NewReader(src), "image/webp")
	require.NoError(t, err)
	assert.Equal(t, int64(len(src)), out.Size)
}
