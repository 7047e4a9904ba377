package port

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/db"
)

// TaskDispatcher enqueues asynchronous work onto the durable queues.
// Each method maps to one named queue; delivery is at-least-once.
type TaskDispatcher interface {
	EnqueueGenerateContent(ctx context.Context, id db.UUID) error
	EnqueueReviewPending(ctx context.Context, id db.UUID) error
	EnqueuePublishContent(ctx context.Context, id db.UUID) error
}
