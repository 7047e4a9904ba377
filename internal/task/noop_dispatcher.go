package task

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueGenerateContent(ctx context.Context, id db.UUID) error {
	return nil
}

func (d *NoopDispatcher) EnqueueReviewPending(ctx context.Context, id db.UUID) error {
	return nil
}

func (d *NoopDispatcher) EnqueuePublishContent(ctx context.Context, id db.UUID) error {
	return nil
}
