package port

import (
	"context"
	"io"
)

// Storage defines blob storage operations for materialized media assets.
// Implementations are bound to a single bucket at construction time.
type Storage interface {
	InitBucket() error
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, fileKey string) error
	PublicURL(fileKey string) string
}
