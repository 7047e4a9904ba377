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

// PublishContentHandler handles a publish-content task. The service
// re-verifies every gate itself; a conflict reported back means the message
// must not be retried.
func PublishContentHandler(ctx context.Context, p task.ContentPayload, svc port.ContentPublisher) error {
	id, err := uuid.Parse(p.ContentID)
	if err != nil {
		log.Printf("❌  Invalid content ID %q: %v", p.ContentID, err)
		return fmt.Errorf("invalid content ID %q: %v: %w", p.ContentID, err, asynq.SkipRetry)
	}

	out, err := svc.PublishContent(ctx, db.UUID(id))
	if err != nil {
		log.Printf("❌  Failed to publish content #%s: %v", id, err)
		return permanentOrRetry(err)
	}

	if out.AlreadyPublished {
		log.Printf("⏭️  Content #%s already published as media %q, skipping", id, out.MediaID)
		return nil
	}
	log.Printf("✅  Successfully published content #%s as media %q", id, out.MediaID)
	return nil
}
