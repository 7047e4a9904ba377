package task

import (
	"testing"

	"github.com/hibiken/asynq"
)

func TestNewContentTasks_RoundTrip(t *testing.T) {
	makers := map[string]func(string) (*asynq.Task, error){
		TypeGenerateContent: NewGenerateContentTask,
		TypeReviewPending:   NewReviewPendingTask,
		TypePublishContent:  NewPublishContentTask,
	}

	for wantType, maker := range makers {
		tk, err := maker("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tk.Type() != wantType {
			t.Errorf("expected type %q, got %q", wantType, tk.Type())
		}
		p, err := ParseContentPayload(tk)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ContentID != "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee" {
			t.Errorf("unexpected content ID %q", p.ContentID)
		}
	}
}

func TestParseContentPayload_Invalid(t *testing.T) {
	tk := asynq.NewTask(TypeGenerateContent, []byte("not json"))
	if _, err := ParseContentPayload(tk); err == nil {
		t.Fatal("expected error for invalid payload")
	}
}
