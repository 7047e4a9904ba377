package content

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"time"

	_ "golang.org/x/image/webp"

	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type generationPollerSrv struct {
	repo     port.ContentRepository
	gen      port.Generator
	strg     port.Storage
	reviewer port.MediaReviewer
}

// NewGenerationPoller constructs a GenerationPoller implementation.
func NewGenerationPoller(repo port.ContentRepository, gen port.Generator, strg port.Storage, reviewer port.MediaReviewer) port.GenerationPoller {
	return &generationPollerSrv{repo: repo, gen: gen, strg: strg, reviewer: reviewer}
}

// PollGenerations sweeps every submitted record, materializes the ones the
// provider reports finished, and hands them to the automated review gate.
// One bad record never aborts the sweep.
func (s *generationPollerSrv) PollGenerations(ctx context.Context) error {
	pending, err := s.repo.ListByGenerationStatus(ctx, model.GenerationStatusSubmitted, DefaultListLimit)
	if err != nil {
		return fmt.Errorf("failed listing submitted contents: %w", err)
	}

	for _, c := range pending {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		state, err := s.gen.Status(ctx, c.ProviderModelID, c.ProviderRequestID)
		if err != nil {
			log.Printf("status check failed for content #%s: %v", c.ID, err)
			continue
		}
		if state != port.GenerationStateCompleted {
			continue
		}

		if err := s.materialize(ctx, c); err != nil {
			log.Printf("materialization failed for content #%s: %v", c.ID, err)
			if markErr := s.markAsFailed(ctx, c, err.Error()); markErr != nil {
				log.Printf("markAsFailed failed for content #%s: %v", c.ID, markErr)
			}
			continue
		}

		if _, err := s.reviewer.ReviewGeneratedMedia(ctx, c.ID); err != nil {
			log.Printf("automated review failed for content #%s: %v", c.ID, err)
		}
	}

	return nil
}

// materialize fetches the finished asset from the provider, copies it into
// blob storage and moves the record to completed with review pending.
func (s *generationPollerSrv) materialize(ctx context.Context, c *model.Content) error {
	res, err := s.gen.Result(ctx, c.ProviderModelID, c.ProviderRequestID, c.MediaType)
	if err != nil {
		return fmt.Errorf("failed fetching result: %w", err)
	}

	reader, size, err := s.gen.Download(ctx, res.AssetURL)
	if err != nil {
		return fmt.Errorf("failed downloading asset: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("failed to close asset reader for content #%s", c.ID)
		}
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed reading asset: %w", err)
	}
	size = int64(len(data))

	width, height := res.Width, res.Height
	if c.MediaType == model.MediaTypeImage {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			width, height = cfg.Width, cfg.Height
		}
	}

	ext, contentType := assetFormat(c)
	key := fmt.Sprintf("contents/%s%s", c.ID, ext)
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(data), size, map[string]string{
		"Content-Type": contentType,
	}); err != nil {
		return fmt.Errorf("failed saving asset %q: %w", key, err)
	}

	now := time.Now().UTC()
	c.ProviderURL = res.AssetURL
	c.BlobKey = key
	c.BlobURL = s.strg.PublicURL(key)
	c.SizeBytes = &size
	if width > 0 && height > 0 {
		c.Width = &width
		c.Height = &height
	}
	c.GenerationStatus = model.GenerationStatusCompleted
	c.GenerationCompletedAt = &now
	c.MediaReviewStatus = model.MediaReviewStatusPending
	if err := s.repo.Update(ctx, c); err != nil {
		// the blob is unreachable without the record, remove it again
		if rmErr := s.strg.RemoveFile(ctx, key); rmErr != nil {
			log.Printf("failed removing orphaned asset %q for content #%s: %v", key, c.ID, rmErr)
		}
		return fmt.Errorf("failed updating content: %w", err)
	}

	return nil
}

func (s *generationPollerSrv) markAsFailed(ctx context.Context, c *model.Content, reason string) error {
	now := time.Now().UTC()
	c.GenerationStatus = model.GenerationStatusFailed
	c.FailureMessage = &reason
	c.GenerationFailedAt = &now
	return s.repo.Update(ctx, c)
}

func assetFormat(c *model.Content) (ext, contentType string) {
	if c.MediaType == model.MediaTypeVideo {
		return ".mp4", "video/mp4"
	}
	switch c.OutputFormat {
	case "png":
		return ".png", "image/png"
	case "webp":
		return ".webp", "image/webp"
	default:
		return ".jpg", "image/jpeg"
	}
}
