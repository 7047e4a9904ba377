package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/port"
)

// detailsTTL bounds how long a cached content detail may be served. Records
// mutate through the review pipeline, so entries stay short-lived.
const detailsTTL = 5 * time.Minute

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetContent fetches content details either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag
// string.
func (r *httpRenderer) RenderGetContent(ctx context.Context, getter port.ContentGetter, id db.UUID) ([]byte, string, error) {
	raw, err := r.cache.GetContentDetails(ctx, id)
	etag, errEtag := r.cache.GetEtagContentDetails(ctx, id)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetContent(ctx, id)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetContentDetails(ctx, id, raw, detailsTTL)
	r.cache.SetEtagContentDetails(ctx, id, etag, detailsTTL)

	return raw, etag, nil
}
