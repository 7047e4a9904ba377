package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patimanas321/ForgeLens/internal/cache"
	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/handler/api"
	"github.com/patimanas321/ForgeLens/internal/migration"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/repository/mariadb"
	"github.com/patimanas321/ForgeLens/internal/task"
	contentSvc "github.com/patimanas321/ForgeLens/internal/usecase/content"
	"github.com/patimanas321/ForgeLens/test/testutil"
)

// newRouter wires the approval-gate HTTP surface the way cmd/api does,
// minus the external providers.
func newRouter(dbConn *sql.DB) *chi.Mux {
	repo := mariadb.NewContentRepository(dbConn)
	dispatcher := task.NewNoopDispatcher()
	ca := cache.NewNoop()

	r := chi.NewRouter()
	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	submitter := contentSvc.NewGenerationSubmitter(repo, dispatcher, db.NewUUID)
	r.Post("/contents/generate", api.SubmitGenerationHandler(submitter))

	lister := contentSvc.NewContentLister(repo)
	r.Get("/contents/pending", api.ListPendingHandler(lister))
	r.Get("/contents/history", api.ListApprovalHistoryHandler(lister))

	gate := contentSvc.NewApprovalGate(repo, dispatcher, ca)
	r.With(api.WithID()).Post("/contents/{id}/approve", api.ApproveContentHandler(gate))
	r.With(api.WithID()).Post("/contents/{id}/reject", api.RejectContentHandler(gate))
	r.With(api.WithID()).Post("/contents/{id}/request_edits", api.RequestEditsHandler(gate))

	return r
}

func setupServer(t *testing.T) (*httptest.Server, *mariadb.ContentRepository, func()) {
	t.Helper()

	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	if err := migration.MigrateUp(testDB.DB); err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}

	srv := httptest.NewServer(newRouter(testDB.DB))
	repo := mariadb.NewContentRepository(testDB.DB)

	return srv, repo, func() {
		srv.Close()
		_ = testDB.Cleanup()
	}
}

func insertPendingContent(t *testing.T, repo *mariadb.ContentRepository, id string) db.UUID {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	c := &model.Content{
		ID:                db.UUID(uuid.MustParse(id)),
		MediaType:         model.MediaTypeImage,
		PostType:          model.PostTypePost,
		Prompt:            "a quiet alpine lake",
		BlobURL:           "http://blob.local/contents/" + id + ".jpg",
		TargetAccountID:   "acc-1",
		TargetAccountName: "Wanderlust Diaries",
		Topic:             "travel",
		Caption:           "Still waters",
		Hashtags:          model.Strings{"travel"},
		GenerationStatus:  model.GenerationStatusCompleted,
		MediaReviewStatus: model.MediaReviewStatusApproved,
		ApprovalStatus:    model.ApprovalStatusPending,
		PublishStatus:     model.PublishStatusPending,
		MediaReviewedAt:   &now,
	}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("insert content: %v", err)
	}
	return c.ID
}

func TestApprovalFlowE2E(t *testing.T) {
	srv, repo, cleanup := setupServer(t)
	defer cleanup()

	id := insertPendingContent(t, repo, "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	// the record shows up in the pending queue
	resp, err := http.Get(srv.URL + "/contents/pending")
	if err != nil {
		t.Fatalf("GET pending: %v", err)
	}
	var pending api.ListContentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&pending); err != nil {
		t.Fatalf("decode pending: %v", err)
	}
	resp.Body.Close()
	if pending.Count != 1 || len(pending.Contents) != 1 {
		t.Fatalf("pending = %d records; want 1", pending.Count)
	}

	// approve with notes
	body := bytes.NewReader([]byte(`{"notes":"looks good"}`))
	resp, err = http.Post(srv.URL+"/contents/"+id.String()+"/approve", "application/json", body)
	if err != nil {
		t.Fatalf("POST approve: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve status = %d; want 200", resp.StatusCode)
	}
	var approved model.Content
	if err := json.NewDecoder(resp.Body).Decode(&approved); err != nil {
		t.Fatalf("decode approve response: %v", err)
	}
	resp.Body.Close()
	if approved.ApprovalStatus != model.ApprovalStatusApproved {
		t.Errorf("ApprovalStatus = %q; want approved", approved.ApprovalStatus)
	}
	if approved.ReviewerNotes != "looks good" {
		t.Errorf("ReviewerNotes = %q; want %q", approved.ReviewerNotes, "looks good")
	}

	// a second approve is a conflict naming the actual status
	resp, err = http.Post(srv.URL+"/contents/"+id.String()+"/approve", "application/json",
		bytes.NewReader([]byte(`{"notes":"again"}`)))
	if err != nil {
		t.Fatalf("POST approve twice: %v", err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second approve status = %d; want 409", resp.StatusCode)
	}
	var conflict errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&conflict); err != nil {
		t.Fatalf("decode conflict: %v", err)
	}
	resp.Body.Close()
	if !strings.Contains(conflict.Error, "approved") {
		t.Errorf("conflict error %q should name the actual status", conflict.Error)
	}

	// the ruling shows up in history
	resp, err = http.Get(srv.URL + "/contents/history")
	if err != nil {
		t.Fatalf("GET history: %v", err)
	}
	var history api.ListContentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	resp.Body.Close()
	if history.Count != 1 || history.Contents[0].ID != id {
		t.Fatalf("history = %d records; want the approved one", history.Count)
	}
}

func TestApproveUnknownContentE2E(t *testing.T) {
	srv, _, cleanup := setupServer(t)
	defer cleanup()

	resp, err := http.Post(srv.URL+"/contents/99999999-9999-9999-9999-999999999999/approve",
		"application/json", bytes.NewReader([]byte(`{}`)))
	if err != nil {
		t.Fatalf("POST approve: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", resp.StatusCode)
	}
}

func TestSubmitGenerationE2E(t *testing.T) {
	srv, repo, cleanup := setupServer(t)
	defer cleanup()

	reqBody := []byte(`{
		"media_type": "image",
		"prompt": "street food market at dusk",
		"topic": "food",
		"caption": "Night market finds",
		"hashtags": ["food", "streetfood"]
	}`)
	resp, err := http.Post(srv.URL+"/contents/generate", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		t.Fatalf("POST generate: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d; want 201", resp.StatusCode)
	}

	var out model.Content
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.GenerationStatus != model.GenerationStatusQueued {
		t.Errorf("GenerationStatus = %q; want queued", out.GenerationStatus)
	}

	stored, err := repo.GetByID(context.Background(), out.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.PostType != model.PostTypePost {
		t.Errorf("PostType = %q; want the post default", stored.PostType)
	}
	if stored.OutputFormat != "jpeg" {
		t.Errorf("OutputFormat = %q; want the jpeg default", stored.OutputFormat)
	}

	// rejects an invalid media type
	resp2, err := http.Post(srv.URL+"/contents/generate", "application/json",
		bytes.NewReader([]byte(`{"media_type":"audio","prompt":"x"}`)))
	if err != nil {
		t.Fatalf("POST generate invalid: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid submit status = %d; want 400", resp2.StatusCode)
	}
}
