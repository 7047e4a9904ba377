package model

import (
	"time"

	"github.com/patimanas321/ForgeLens/internal/db"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

const (
	PostTypePost     = "post"
	PostTypeReel     = "reel"
	PostTypeCarousel = "carousel"
	PostTypeStory    = "story"
)

// Content is one generated asset (image or video) tracked through its full
// lifecycle: generation, automated review, human approval, publishing.
type Content struct {
	ID        db.UUID `json:"id"`
	MediaType string  `json:"media_type"`
	PostType  string  `json:"post_type"`

	Prompt          string  `json:"prompt"`
	VideoModelHint  string  `json:"video_model_hint,omitempty"`
	AspectRatio     string  `json:"aspect_ratio"`
	Resolution      string  `json:"resolution,omitempty"`
	OutputFormat    string  `json:"output_format,omitempty"`
	DurationSeconds *int    `json:"duration_seconds,omitempty"`
	ProviderURL     string  `json:"provider_url,omitempty"`
	BlobURL         string  `json:"blob_url,omitempty"`
	BlobKey         string  `json:"blob_key,omitempty"`
	SizeBytes       *int64  `json:"size_bytes,omitempty"`
	Width           *int    `json:"width,omitempty"`
	Height          *int    `json:"height,omitempty"`
	CarouselURLs    Strings `json:"carousel_urls,omitempty"`

	TargetAccountID   string  `json:"target_account_id"`
	TargetAccountName string  `json:"target_account_name"`
	Topic             string  `json:"topic"`
	Caption           string  `json:"caption"`
	Hashtags          Strings `json:"hashtags"`

	GenerationStatus  GenerationStatus  `json:"generation_status"`
	MediaReviewStatus MediaReviewStatus `json:"media_review_status"`
	ApprovalStatus    ApprovalStatus    `json:"approval_status"`
	PublishStatus     PublishStatus     `json:"publish_status"`

	ProviderRequestID string  `json:"provider_request_id,omitempty"`
	ProviderModelID   string  `json:"provider_model_id,omitempty"`
	FailureMessage    *string `json:"failure_message,omitempty"`

	MediaReviewScore Severities `json:"media_review_score,omitempty"`
	MediaReviewNotes string     `json:"media_review_notes,omitempty"`
	ReviewerNotes    string     `json:"reviewer_notes,omitempty"`

	InstagramMediaID     string `json:"instagram_media_id,omitempty"`
	InstagramContainerID string `json:"instagram_container_id,omitempty"`

	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	GenerationRequestedAt *time.Time `json:"generation_requested_at,omitempty"`
	GenerationSubmittedAt *time.Time `json:"generation_submitted_at,omitempty"`
	GenerationCompletedAt *time.Time `json:"generation_completed_at,omitempty"`
	GenerationFailedAt    *time.Time `json:"generation_failed_at,omitempty"`
	MediaReviewedAt       *time.Time `json:"media_reviewed_at,omitempty"`
	HumanReviewedAt       *time.Time `json:"human_reviewed_at,omitempty"`
	PublishedAt           *time.Time `json:"published_at,omitempty"`
}

// IsVideo reports whether the record should go through the video publish path.
func (c *Content) IsVideo() bool {
	return c.MediaType == MediaTypeVideo || c.PostType == PostTypeReel
}
