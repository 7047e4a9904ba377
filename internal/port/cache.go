package port

import (
	"context"
	"time"

	"github.com/patimanas321/ForgeLens/internal/db"
)

// Cache provides caching capabilities for content detail reads.
type Cache interface {
	GetContentDetails(ctx context.Context, id db.UUID) ([]byte, error)
	GetEtagContentDetails(ctx context.Context, id db.UUID) (string, error)
	SetContentDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration)
	SetEtagContentDetails(ctx context.Context, id db.UUID, etag string, ttl time.Duration)
	DeleteContentDetails(ctx context.Context, id db.UUID) error
	DeleteEtagContentDetails(ctx context.Context, id db.UUID) error
}
