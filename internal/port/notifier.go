package port

import "context"

// NotificationSummary is the condensed record sent over the side-channel.
type NotificationSummary struct {
	ID             string
	MediaType      string
	PostType       string
	Topic          string
	CaptionPreview string
	MediaURL       string
	Account        string
}

// Notifier is the best-effort human alert channel. It is never
// authoritative; failures must not block or roll back state transitions.
type Notifier interface {
	NotifyReviewPending(ctx context.Context, summary NotificationSummary) error
	NotifyPublished(ctx context.Context, summary NotificationSummary) error
}
