package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/patimanas321/ForgeLens/internal/mock"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

func TestListPendingHandler(t *testing.T) {
	svc := &mock.MockContentLister{Out: []*model.Content{
		{ID: testID(), ApprovalStatus: model.ApprovalStatusPending},
	}}
	handler := ListPendingHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/contents/pending?account_id=acct-9&limit=10", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if !svc.PendingCalled {
		t.Fatal("expected ListPending to be called")
	}
	if svc.AccountID != "acct-9" {
		t.Errorf("account_id = %q; want acct-9", svc.AccountID)
	}
	if svc.Limit != 10 {
		t.Errorf("limit = %d; want 10", svc.Limit)
	}

	var resp ListContentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Count != 1 || len(resp.Contents) != 1 {
		t.Errorf("count = %d, contents = %d; want 1 each", resp.Count, len(resp.Contents))
	}
}

func TestListPendingHandler_InvalidLimitIgnored(t *testing.T) {
	svc := &mock.MockContentLister{}
	handler := ListPendingHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/contents/pending?limit=banana", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if svc.Limit != 0 {
		t.Errorf("limit = %d; want 0 fallback", svc.Limit)
	}
}

func TestListPendingHandler_EmptyResult(t *testing.T) {
	handler := ListPendingHandler(&mock.MockContentLister{})

	req := httptest.NewRequest(http.MethodGet, "/contents/pending", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	var resp struct {
		Contents []any `json:"contents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Contents == nil {
		t.Error("expected contents to be an empty array, not null")
	}
}

func TestListHandlers_Routing(t *testing.T) {
	tests := []struct {
		name    string
		build   func(port.ContentLister) http.HandlerFunc
		called  func(*mock.MockContentLister) bool
		wantErr bool
	}{
		{"approval history", ListApprovalHistoryHandler, func(m *mock.MockContentLister) bool { return m.ApprovalHistoryCalled }, false},
		{"pending publish", ListPendingPublishHandler, func(m *mock.MockContentLister) bool { return m.PendingPublishCalled }, false},
		{"publish history", ListPublishHistoryHandler, func(m *mock.MockContentLister) bool { return m.PublishHistoryCalled }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockContentLister{}
			handler := tc.build(svc)

			req := httptest.NewRequest(http.MethodGet, "/contents", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
			}
			if !tc.called(svc) {
				t.Error("expected the matching lister method to be called")
			}
		})
	}
}

func TestListApprovalHistoryHandler_ServiceError(t *testing.T) {
	handler := ListApprovalHistoryHandler(&mock.MockContentLister{Err: errTest})

	req := httptest.NewRequest(http.MethodGet, "/contents/history", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
	}
}
