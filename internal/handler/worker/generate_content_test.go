package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/mock"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/task"
	"github.com/patimanas321/ForgeLens/internal/usecase/content"
)

func testID() db.UUID {
	return db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
}

func TestGenerateContentHandler_InvalidID(t *testing.T) {
	svc := &mock.MockGenerationStarter{}
	err := GenerateContentHandler(context.Background(), task.ContentPayload{ContentID: "invalid"}, svc)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry for invalid UUID, got %v", err)
	}
	if svc.Called {
		t.Error("service should not be called on invalid id")
	}
}

func TestGenerateContentHandler_NotFoundSkipsRetry(t *testing.T) {
	svc := &mock.MockGenerationStarter{Err: content.ErrNotFound}
	err := GenerateContentHandler(context.Background(), task.ContentPayload{ContentID: testID().String()}, svc)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestGenerateContentHandler_TransientErrorRetries(t *testing.T) {
	svcErr := errors.New("provider down")
	svc := &mock.MockGenerationStarter{Err: svcErr}

	err := GenerateContentHandler(context.Background(), task.ContentPayload{ContentID: testID().String()}, svc)
	if !errors.Is(err, svcErr) {
		t.Fatalf("got error %v; want %v", err, svcErr)
	}
	if errors.Is(err, asynq.SkipRetry) {
		t.Error("transient errors must stay retryable")
	}
}

func TestGenerateContentHandler_Success(t *testing.T) {
	svc := &mock.MockGenerationStarter{}

	err := GenerateContentHandler(context.Background(), task.ContentPayload{ContentID: testID().String()}, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called {
		t.Error("service not called")
	}
	if svc.ID != testID() {
		t.Errorf("service got id %s; want %s", svc.ID, testID())
	}
}

func TestPermanentOrRetry_StateConflict(t *testing.T) {
	conflict := &content.InvalidStateTransitionError{
		Field:   "approval_status",
		Current: string(model.ApprovalStatusRejected),
		Wanted:  string(model.ApprovalStatusPending),
	}
	if err := permanentOrRetry(conflict); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry for state conflict, got %v", err)
	}
}
