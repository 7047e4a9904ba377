package content

import (
	"context"
	"database/sql"
	"errors"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type contentGetterSrv struct {
	repo port.ContentRepository
	strg port.Storage
}

// NewContentGetter constructs a ContentGetter implementation.
func NewContentGetter(repo port.ContentRepository, strg port.Storage) port.ContentGetter {
	return &contentGetterSrv{repo: repo, strg: strg}
}

func (s *contentGetterSrv) GetContent(ctx context.Context, id db.UUID) (*port.GetContentOutput, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	url := c.BlobURL
	if url == "" && c.BlobKey != "" {
		url = s.strg.PublicURL(c.BlobKey)
	}

	return &port.GetContentOutput{Content: c, MediaURL: url}, nil
}
