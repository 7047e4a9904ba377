package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/task"
)

// NotifyReviewHandler handles a notify-review task.
func NotifyReviewHandler(ctx context.Context, p task.ContentPayload, svc port.ReviewNotifier) error {
	id, err := uuid.Parse(p.ContentID)
	if err != nil {
		log.Printf("❌  Invalid content ID %q: %v", p.ContentID, err)
		return fmt.Errorf("invalid content ID %q: %v: %w", p.ContentID, err, asynq.SkipRetry)
	}

	if err := svc.NotifyReviewPending(ctx, db.UUID(id)); err != nil {
		log.Printf("❌  Failed to notify review of content #%s: %v", id, err)
		return permanentOrRetry(err)
	}

	log.Printf("✅  Successfully notified review of content #%s", id)
	return nil
}
