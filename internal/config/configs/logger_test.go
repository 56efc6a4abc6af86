package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Logger{Level: "err"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Logger{Level: "verbose"}.SlogLevel())
}

func TestNewSlogJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Logger{Level: "info", Format: "json"}.NewSlog(&buf)

	log.Debug("hidden")
	log.Info("billed", slog.String("ad_id", "a1"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "billed", rec["msg"])
	assert.Equal(t, "a1", rec["ad_id"])
}

func TestNewSlogText(t *testing.T) {
	var buf bytes.Buffer
	Logger{Format: "yaml"}.NewSlog(&buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
