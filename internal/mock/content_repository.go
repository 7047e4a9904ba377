package mock

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
)

// MockContentRepo implements repository operations for tests.
type MockContentRepo struct {
	ContentRecord *model.Content

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error
	ListOut   []*model.Content

	GetCalled    bool
	Created      *model.Content
	Updated      *model.Content
	DeleteCalled bool
	DeletedID    db.UUID
	ListCalled   bool

	ListGenerationStatus model.GenerationStatus
	ListApprovalStatus   model.ApprovalStatus
	ListAccountID        string
	ListPublishStatus    model.PublishStatus
	ListLimit            int
}

func (m *MockContentRepo) GetByID(ctx context.Context, id db.UUID) (*model.Content, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.ContentRecord, nil
}

func (m *MockContentRepo) Create(ctx context.Context, c *model.Content) error {
	m.Created = c
	return m.CreateErr
}

func (m *MockContentRepo) Update(ctx context.Context, c *model.Content) error {
	m.Updated = c
	return m.UpdateErr
}

func (m *MockContentRepo) Delete(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockContentRepo) ListByGenerationStatus(ctx context.Context, status model.GenerationStatus, limit int) ([]*model.Content, error) {
	m.ListCalled = true
	m.ListGenerationStatus = status
	m.ListLimit = limit
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockContentRepo) ListByApprovalStatus(ctx context.Context, status model.ApprovalStatus, accountID string, limit int) ([]*model.Content, error) {
	m.ListCalled = true
	m.ListApprovalStatus = status
	m.ListAccountID = accountID
	m.ListLimit = limit
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockContentRepo) ListReviewed(ctx context.Context, limit int) ([]*model.Content, error) {
	m.ListCalled = true
	m.ListLimit = limit
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockContentRepo) ListPublishable(ctx context.Context, publishStatus model.PublishStatus, limit int) ([]*model.Content, error) {
	m.ListCalled = true
	m.ListPublishStatus = publishStatus
	m.ListLimit = limit
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}
