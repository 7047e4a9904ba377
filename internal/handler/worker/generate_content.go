package worker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/task"
	"github.com/patimanas321/ForgeLens/internal/usecase/content"
)

// GenerateContentHandler handles a generate-content task: it converts the
// payload to the starter service's input and delegates. Validation failures
// skip the retry budget; everything else is redelivered.
func GenerateContentHandler(ctx context.Context, p task.ContentPayload, svc port.GenerationStarter) error {
	id, err := uuid.Parse(p.ContentID)
	if err != nil {
		log.Printf("❌  Invalid content ID %q: %v", p.ContentID, err)
		return fmt.Errorf("invalid content ID %q: %v: %w", p.ContentID, err, asynq.SkipRetry)
	}

	if err := svc.StartGeneration(ctx, db.UUID(id)); err != nil {
		log.Printf("❌  Failed to start generation of content #%s: %v", id, err)
		return permanentOrRetry(err)
	}

	log.Printf("✅  Successfully submitted content #%s for generation", id)
	return nil
}

// permanentOrRetry maps service errors to the queue contract: unknown
// records and state conflicts are permanent, everything else transient.
func permanentOrRetry(err error) error {
	var conflict *content.InvalidStateTransitionError
	switch {
	case errors.Is(err, content.ErrNotFound):
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	case errors.Is(err, content.ErrNoCarouselAssets):
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	case errors.As(err, &conflict):
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	default:
		return err
	}
}
