package port

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/db"
)

// HTTPRenderer mediates between HTTP handlers and the content getter use
// case. It provides caching capabilities and returns both the JSON
// representation of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	RenderGetContent(ctx context.Context, getter ContentGetter, id db.UUID) ([]byte, string, error)
}
