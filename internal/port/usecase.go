package port

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
)

type UUIDGen func() db.UUID

// GenerationSubmitter creates a content record and enqueues it for
// generation. The record is deleted again if the enqueue fails.
type GenerationSubmitter interface {
	SubmitGeneration(ctx context.Context, in SubmitGenerationInput) (*model.Content, error)
}
type SubmitGenerationInput struct {
	MediaType         string
	PostType          string
	Prompt            string
	AspectRatio       string
	Resolution        string
	OutputFormat      string
	DurationSeconds   int
	VideoModelHint    string
	TargetAccountID   string
	TargetAccountName string
	Topic             string
	Caption           string
	Hashtags          []string
}

// GenerationStarter handles a generation-queue message: submits the job to
// the external provider and records the returned handle.
type GenerationStarter interface {
	StartGeneration(ctx context.Context, id db.UUID) error
}

// GenerationPoller sweeps submitted records, materializes finished assets
// and runs the automated review gate.
type GenerationPoller interface {
	PollGenerations(ctx context.Context) error
}

// MediaReviewer is the automated review gate over a generated asset.
type MediaReviewer interface {
	ReviewGeneratedMedia(ctx context.Context, id db.UUID) (*ReviewOutput, error)
}

// PlanReviewer reviews a content plan's text before generation.
type PlanReviewer interface {
	ReviewContentPlan(ctx context.Context, id db.UUID) (*ReviewOutput, error)
}

type ReviewOutput struct {
	ContentID         db.UUID                 `json:"content_id"`
	Status            model.MediaReviewStatus `json:"status"`
	Severities        model.Severities        `json:"severities,omitempty"`
	BlockedCategories []string                `json:"blocked_categories,omitempty"`
	Summary           string                  `json:"summary"`
}

/// ApprovalGate is the human gate: guarded writes against pending records.
type ApprovalGate interface {
	Approve(ctx context.Context, id db.UUID, notes string) (*model.Content, error)
	Reject(ctx context.Context, id db.UUID, notes string) (*model.Content, error)
	RequestEdits(ctx context.Context, id db.UUID, notes string) (*model.Content, error)
}

// ContentGetter retrieves one content record with its public media URL.
type ContentGetter interface {
	GetContent(ctx context.Context, id db.UUID) (*GetContentOutput, error)
}
type GetContentOutput struct {
	Content  *model.Content `json:"content"`
	MediaURL string         `json:"media_url,omitempty"`
}

// ContentLister serves the approval gate's read operations.
type ContentLister interface {
	ListPending(ctx context.Context, accountID string, limit int) ([]*model.Content, error)
	ListApprovalHistory(ctx context.Context, limit int) ([]*model.Content, error)
	ListPendingPublish(ctx context.Context, limit int) ([]*model.Content, error)
	ListPublishHistory(ctx context.Context, limit int) ([]*model.Content, error)
}

// ContentPublisher handles a publish-queue message end to end.
type ContentPublisher interface {
	PublishContent(ctx context.Context, id db.UUID) (*PublishOutput, error)
}
type PublishOutput struct {
	ContentID        db.UUID `json:"content_id"`
	AlreadyPublished bool    `json:"already_published"`
	MediaID          string  `json:"instagram_media_id"`
	ContainerID      string  `json:"instagram_container_id"`
}

// ReviewNotifier handles a review-pending queue message (side-channel).
type ReviewNotifier interface {
	NotifyReviewPending(ctx context.Context, id db.UUID) error
}
