package mock

import (
	"context"
	"time"

	"github.com/patimanas321/ForgeLens/internal/db"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	ContentOut []byte

	// etag values
	EtagContent string

	// errors
	GetContentErr     error
	GetEtagContentErr error
	DelContentErr     error
	DelEtagContentErr error

	// call flags
	GetContentCalled     bool
	GetEtagContentCalled bool
	SetContentCalled     bool
	SetEtagContentCalled bool
	DelContentCalled     bool
	DelEtagContentCalled bool
}

func (c *Cache) GetContentDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	c.GetContentCalled = true
	if c.GetContentErr != nil {
		return nil, c.GetContentErr
	}
	return c.ContentOut, nil
}

func (c *Cache) GetEtagContentDetails(ctx context.Context, id db.UUID) (string, error) {
	c.GetEtagContentCalled = true
	if c.GetEtagContentErr != nil {
		return "", c.GetEtagContentErr
	}
	return c.EtagContent, nil
}

func (c *Cache) SetContentDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
	c.SetContentCalled = true
	c.ContentOut = data
}

func (c *Cache) SetEtagContentDetails(ctx context.Context, id db.UUID, etag string, ttl time.Duration) {
	c.SetEtagContentCalled = true
	c.EtagContent = etag
}

func (c *Cache) DeleteContentDetails(ctx context.Context, id db.UUID) error {
	c.DelContentCalled = true
	return c.DelContentErr
}

func (c *Cache) DeleteEtagContentDetails(ctx context.Context, id db.UUID) error {
	c.DelEtagContentCalled = true
	return c.DelEtagContentErr
}
