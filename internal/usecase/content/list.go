package content

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type contentListerSrv struct {
	repo port.ContentRepository
}

// NewContentLister constructs a ContentLister implementation.
func NewContentLister(repo port.ContentRepository) port.ContentLister {
	return &contentListerSrv{repo: repo}
}

// ListPending returns the human approval queue, optionally narrowed to one
// target account.
func (s *contentListerSrv) ListPending(ctx context.Context, accountID string, limit int) ([]*model.Content, error) {
	return s.repo.ListByApprovalStatus(ctx, model.ApprovalStatusPending, accountID, clampLimit(limit))
}

// ListApprovalHistory returns records a human has already ruled on.
func (s *contentListerSrv) ListApprovalHistory(ctx context.Context, limit int) ([]*model.Content, error) {
	return s.repo.ListReviewed(ctx, clampLimit(limit))
}

// ListPendingPublish returns approved records still waiting to publish.
func (s *contentListerSrv) ListPendingPublish(ctx context.Context, limit int) ([]*model.Content, error) {
	return s.repo.ListPublishable(ctx, model.PublishStatusPending, clampLimit(limit))
}

// ListPublishHistory returns records already published.
func (s *contentListerSrv) ListPublishHistory(ctx context.Context, limit int) ([]*model.Content, error) {
	return s.repo.ListPublishable(ctx, model.PublishStatusPublished, clampLimit(limit))
}
