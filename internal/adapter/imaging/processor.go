package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	"jeju-ads/internal/core/port"
)

const jpegQuality = 85

// Processor fits JPEG and PNG creatives into a bounding box. Other formats
// are stored as uploaded.
type Processor struct {
	maxWidth, maxHeight int
}

// NewProcessor returns a processor for the given box. Non-positive bounds
// disable resizing; images are still decoded to verify them.
func NewProcessor(maxWidth, maxHeight int) *Processor {
	return &Processor{maxWidth: maxWidth, maxHeight: maxHeight}
}

var _ port.ImageProcessor = (*Processor)(nil)

// Process decodes body, scales it down when it exceeds the box and
// re-encodes it in its original format.
func (p *Processor) Process(body io.Reader, contentType string) (*port.ProcessedImage, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if contentType != "image/jpeg" && contentType != "image/png" {
		return &port.ProcessedImage{Body: bytes.NewReader(data), Size: int64(len(data)), ContentType: contentType}, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if "image/"+format != contentType {
		return nil, fmt.Errorf("declared %s but content is %s", contentType, format)
	}

	b := img.Bounds()
	if p.maxWidth <= 0 || p.maxHeight <= 0 || (b.Dx() <= p.maxWidth && b.Dy() <= p.maxHeight) {
		return &port.ProcessedImage{Body: bytes.NewReader(data), Size: int64(len(data)), ContentType: contentType}, nil
	}

	resized := imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)
	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, resized)
	default:
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return &port.ProcessedImage{Body: &buf, Size: int64(buf.Len()), ContentType: contentType}, nil
}
