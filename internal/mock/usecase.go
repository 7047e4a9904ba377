package mock

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

// MockGenerationSubmitter implements port.GenerationSubmitter for tests.
type MockGenerationSubmitter struct {
	Out    *model.Content
	Err    error
	Called bool
	In     port.SubmitGenerationInput
}

func (m *MockGenerationSubmitter) SubmitGeneration(ctx context.Context, in port.SubmitGenerationInput) (*model.Content, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockGenerationStarter implements port.GenerationStarter for tests.
type MockGenerationStarter struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockGenerationStarter) StartGeneration(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockGenerationPoller implements port.GenerationPoller for tests.
type MockGenerationPoller struct {
	Err    error
	Called bool
}

func (m *MockGenerationPoller) PollGenerations(ctx context.Context) error {
	m.Called = true
	return m.Err
}

// MockMediaReviewer implements port.MediaReviewer for tests.
type MockMediaReviewer struct {
	Out    *port.ReviewOutput
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockMediaReviewer) ReviewGeneratedMedia(ctx context.Context, id db.UUID) (*port.ReviewOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockPlanReviewer implements port.PlanReviewer for tests.
type MockPlanReviewer struct {
	Out    *port.ReviewOutput
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockPlanReviewer) ReviewContentPlan(ctx context.Context, id db.UUID) (*port.ReviewOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockApprovalGate implements port.ApprovalGate for tests.
type MockApprovalGate struct {
	Out *model.Content
	Err error

	ApproveCalled      bool
	RejectCalled       bool
	RequestEditsCalled bool

	ID    db.UUID
	Notes string
}

func (m *MockApprovalGate) Approve(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
	m.ApproveCalled = true
	m.ID = id
	m.Notes = notes
	return m.Out, m.Err
}

func (m *MockApprovalGate) Reject(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
	m.RejectCalled = true
	m.ID = id
	m.Notes = notes
	return m.Out, m.Err
}

func (m *MockApprovalGate) RequestEdits(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
	m.RequestEditsCalled = true
	m.ID = id
	m.Notes = notes
	return m.Out, m.Err
}

// MockContentGetter implements port.ContentGetter for tests.
type MockContentGetter struct {
	Out    *port.GetContentOutput
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockContentGetter) GetContent(ctx context.Context, id db.UUID) (*port.GetContentOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockContentLister implements port.ContentLister for tests.
type MockContentLister struct {
	Out []*model.Content
	Err error

	PendingCalled         bool
	ApprovalHistoryCalled bool
	PendingPublishCalled  bool
	PublishHistoryCalled  bool

	AccountID string
	Limit     int
}

func (m *MockContentLister) ListPending(ctx context.Context, accountID string, limit int) ([]*model.Content, error) {
	m.PendingCalled = true
	m.AccountID = accountID
	m.Limit = limit
	return m.Out, m.Err
}

func (m *MockContentLister) ListApprovalHistory(ctx context.Context, limit int) ([]*model.Content, error) {
	m.ApprovalHistoryCalled = true
	m.Limit = limit
	return m.Out, m.Err
}

func (m *MockContentLister) ListPendingPublish(ctx context.Context, limit int) ([]*model.Content, error) {
	m.PendingPublishCalled = true
	m.Limit = limit
	return m.Out, m.Err
}

func (m *MockContentLister) ListPublishHistory(ctx context.Context, limit int) ([]*model.Content, error) {
	m.PublishHistoryCalled = true
	m.Limit = limit
	return m.Out, m.Err
}

// MockContentPublisher implements port.ContentPublisher for tests.
type MockContentPublisher struct {
	Out    *port.PublishOutput
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockContentPublisher) PublishContent(ctx context.Context, id db.UUID) (*port.PublishOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockReviewNotifier implements port.ReviewNotifier for tests.
type MockReviewNotifier struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockReviewNotifier) NotifyReviewPending(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}
