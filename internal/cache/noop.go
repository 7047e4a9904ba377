package cache

import (
	"context"
	"time"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetContentDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagContentDetails(ctx context.Context, id db.UUID) (string, error) {
	return "", nil
}

func (n *NoopCache) SetContentDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtagContentDetails(ctx context.Context, id db.UUID, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeleteContentDetails(ctx context.Context, id db.UUID) error { return nil }

func (n *NoopCache) DeleteEtagContentDetails(ctx context.Context, id db.UUID) error {
	return nil
}
