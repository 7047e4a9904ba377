package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/patimanas321/ForgeLens/internal/mock"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/usecase/content"
)

func TestReviewPlanHandler_Success(t *testing.T) {
	svc := &mock.MockPlanReviewer{Out: &port.ReviewOutput{
		ContentID: testID(),
		Status:    model.MediaReviewStatusApproved,
		Summary:   "On brand and safe.",
	}}
	handler := ReviewPlanHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/contents/x/review", nil)
	req = req.WithContext(context.WithValue(req.Context(), IDKey, testID()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if !svc.Called {
		t.Fatal("expected reviewer to be called")
	}

	var resp port.ReviewOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Status != model.MediaReviewStatusApproved {
		t.Errorf("status = %q; want approved", resp.Status)
	}
}

func TestReviewPlanHandler_NotFound(t *testing.T) {
	handler := ReviewPlanHandler(&mock.MockPlanReviewer{Err: content.ErrNotFound})

	req := httptest.NewRequest(http.MethodPost, "/contents/x/review", nil)
	req = req.WithContext(context.WithValue(req.Context(), IDKey, testID()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusNotFound)
	}
}

func TestReviewPlanHandler_ServiceError(t *testing.T) {
	handler := ReviewPlanHandler(&mock.MockPlanReviewer{Err: errTest})

	req := httptest.NewRequest(http.MethodPost, "/contents/x/review", nil)
	req = req.WithContext(context.WithValue(req.Context(), IDKey, testID()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
	}
}
