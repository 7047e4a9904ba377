package mock

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/port"
)

// MockNotifier implements port.Notifier for tests.
type MockNotifier struct {
	ReviewErr    error
	PublishedErr error

	ReviewCalled    bool
	PublishedCalled bool

	ReviewSummary    port.NotificationSummary
	PublishedSummary port.NotificationSummary
}

func (m *MockNotifier) NotifyReviewPending(ctx context.Context, summary port.NotificationSummary) error {
	m.ReviewCalled = true
	m.ReviewSummary = summary
	return m.ReviewErr
}

func (m *MockNotifier) NotifyPublished(ctx context.Context, summary port.NotificationSummary) error {
	m.PublishedCalled = true
	m.PublishedSummary = summary
	return m.PublishedErr
}
