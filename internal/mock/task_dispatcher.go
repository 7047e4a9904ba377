package mock

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/db"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	GenerateCalled bool
	GenerateIDs    []db.UUID
	GenerateErr    error

	ReviewCalled bool
	ReviewIDs    []db.UUID
	ReviewErr    error

	PublishCalled bool
	PublishIDs    []db.UUID
	PublishErr    error
}

func (m *MockDispatcher) EnqueueGenerateContent(ctx context.Context, id db.UUID) error {
	m.GenerateCalled = true
	m.GenerateIDs = append(m.GenerateIDs, id)
	return m.GenerateErr
}

func (m *MockDispatcher) EnqueueReviewPending(ctx context.Context, id db.UUID) error {
	m.ReviewCalled = true
	m.ReviewIDs = append(m.ReviewIDs, id)
	return m.ReviewErr
}

func (m *MockDispatcher) EnqueuePublishContent(ctx context.Context, id db.UUID) error {
	m.PublishCalled = true
	m.PublishIDs = append(m.PublishIDs, id)
	return m.PublishErr
}
