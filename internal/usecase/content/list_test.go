package content

import (
	"context"
	"testing"

	"github.com/patimanas321/ForgeLens/internal/mock"
	"github.com/patimanas321/ForgeLens/internal/model"
)

func TestListPending_PassesAccountAndStatus(t *testing.T) {
	repo := &mock.MockContentRepo{ListOut: []*model.Content{{ID: testUUID()}}}
	svc := NewContentLister(repo)

	out, err := svc.ListPending(context.Background(), "acct-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if repo.ListApprovalStatus != model.ApprovalStatusPending {
		t.Errorf("expected pending filter, got %q", repo.ListApprovalStatus)
	}
	if repo.ListAccountID != "acct-1" || repo.ListLimit != 10 {
		t.Errorf("expected account and limit forwarded, got %q/%d", repo.ListAccountID, repo.ListLimit)
	}
}

func TestListPending_DefaultsLimit(t *testing.T) {
	repo := &mock.MockContentRepo{}
	svc := NewContentLister(repo)

	if _, err := svc.ListPending(context.Background(), "", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.ListLimit != DefaultListLimit {
		t.Errorf("expected default limit %d, got %d", DefaultListLimit, repo.ListLimit)
	}
}

func TestListPending_CapsLimit(t *testing.T) {
	repo := &mock.MockContentRepo{}
	svc := NewContentLister(repo)

	if _, err := svc.ListPending(context.Background(), "", 10000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.ListLimit != MaxListLimit {
		t.Errorf("expected capped limit %d, got %d", MaxListLimit, repo.ListLimit)
	}
}

func TestListPendingPublish_FiltersByStatus(t *testing.T) {
	repo := &mock.MockContentRepo{}
	svc := NewContentLister(repo)

	if _, err := svc.ListPendingPublish(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.ListPublishStatus != model.PublishStatusPending {
		t.Errorf("expected pending publish filter, got %q", repo.ListPublishStatus)
	}
}

func TestListPublishHistory_FiltersByStatus(t *testing.T) {
	repo := &mock.MockContentRepo{}
	svc := NewContentLister(repo)

	if _, err := svc.ListPublishHistory(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.ListPublishStatus != model.PublishStatusPublished {
		t.Errorf("expected published filter, got %q", repo.ListPublishStatus)
	}
}
