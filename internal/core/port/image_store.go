package port

import (
	"context"
	"io"
)

// ImageStore persists ad creatives in object storage.
type ImageStore interface {
	// Put uploads the object and returns its public URL.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ImageProcessor normalises a creative before it is stored. It fails when
// the body is not a decodable image of the declared type.
type ImageProcessor interface {
	Process(body io.Reader, contentType string) (*ProcessedImage, error)
}

// ProcessedImage is the creative as it will be uploaded.
type ProcessedImage struct {
	Body        io.Reader
	Size        int64
	ContentType string
}
