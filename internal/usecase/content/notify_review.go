package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type reviewNotifierSrv struct {
	repo     port.ContentRepository
	notifier port.Notifier
}

// NewReviewNotifier constructs a ReviewNotifier implementation.
func NewReviewNotifier(repo port.ContentRepository, notifier port.Notifier) port.ReviewNotifier {
	return &reviewNotifierSrv{repo: repo, notifier: notifier}
}

// NotifyReviewPending pings the human channel about a record waiting for
// approval. A record that already left the pending state is skipped.
func (s *reviewNotifierSrv) NotifyReviewPending(ctx context.Context, id db.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if c.ApprovalStatus != model.ApprovalStatusPending {
		log.Printf("content #%s is %q, skipping review notification", c.ID, c.ApprovalStatus)
		return nil
	}

	summary := port.NotificationSummary{
		ID:             c.ID.String(),
		MediaType:      c.MediaType,
		PostType:       c.PostType,
		Topic:          c.Topic,
		CaptionPreview: captionPreview(c.Caption),
		MediaURL:       c.BlobURL,
		Account:        c.TargetAccountName,
	}
	if err := s.notifier.NotifyReviewPending(ctx, summary); err != nil {
		return fmt.Errorf("failed notifying review of content #%s: %w", c.ID, err)
	}

	return nil
}
