package port

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
)

// ContentRepository defines persistence operations for content records.
type ContentRepository interface {
	Create(ctx context.Context, content *model.Content) error
	Update(ctx context.Context, content *model.Content) error
	GetByID(ctx context.Context, ID db.UUID) (*model.Content, error)
	Delete(ctx context.Context, ID db.UUID) error
	ListByGenerationStatus(ctx context.Context, status model.GenerationStatus, limit int) ([]*model.Content, error)
	ListByApprovalStatus(ctx context.Context, status model.ApprovalStatus, accountID string, limit int) ([]*model.Content, error)
	ListReviewed(ctx context.Context, limit int) ([]*model.Content, error)
	ListPublishable(ctx context.Context, publishStatus model.PublishStatus, limit int) ([]*model.Content, error)
}
