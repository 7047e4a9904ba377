package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/patimanas321/ForgeLens/internal/port"
)

func testSummary() port.NotificationSummary {
	return port.NotificationSummary{
		ID:             "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		MediaType:      "image",
		PostType:       "post",
		Topic:          "morning routines",
		CaptionPreview: "Start your day right",
		MediaURL:       "https://cdn.test/contents/a.jpg",
		Account:        "wellness_daily",
	}
}

func TestNotifyReviewPending(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewSlackNotifier(srv.URL).NotifyReviewPending(context.Background(), testSummary())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	text, _ := gotBody["text"].(string)
	if !strings.Contains(text, "Pending Review") {
		t.Errorf("unexpected text %q", text)
	}
	raw, _ := json.Marshal(gotBody["blocks"])
	for _, want := range []string{"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", "morning routines", "wellness_daily", "https://cdn.test/contents/a.jpg"} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("expected blocks to contain %q", want)
		}
	}
}

func TestNotifyPublished(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewSlackNotifier(srv.URL).NotifyPublished(context.Background(), testSummary())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	text, _ := gotBody["text"].(string)
	if !strings.Contains(text, "Published") {
		t.Errorf("unexpected text %q", text)
	}
}

func TestNotifyOmitsEmptyMedia(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	summary := testSummary()
	summary.MediaURL = ""
	summary.CaptionPreview = ""
	if err := NewSlackNotifier(srv.URL).NotifyReviewPending(context.Background(), summary); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	raw, _ := json.Marshal(gotBody["blocks"])
	if strings.Contains(string(raw), "View Image/Video") {
		t.Error("expected no media section for empty media URL")
	}
	if strings.Contains(string(raw), "*Preview:*") {
		t.Error("expected no preview field for empty caption")
	}
}

func TestNotifyErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewSlackNotifier(srv.URL).NotifyReviewPending(context.Background(), testSummary())
	if err == nil {
		t.Fatal("expected an error, got none")
	}
}
