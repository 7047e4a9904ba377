package api

import (
	"net/http"
	"strconv"

	"github.com/patimanas321/ForgeLens/internal/logger"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type ListContentsResponse struct {
	Contents []*model.Content `json:"contents"`
	Count    int              `json:"count"`
}

func ListPendingHandler(svc port.ContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListPending(r.Context(), r.URL.Query().Get("account_id"), limitParam(r))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list pending contents", err)
			return
		}
		respondList(w, r, out, "pending")
	}
}

func ListApprovalHistoryHandler(svc port.ContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListApprovalHistory(r.Context(), limitParam(r))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list approval history", err)
			return
		}
		respondList(w, r, out, "approval history")
	}
}

func ListPendingPublishHandler(svc port.ContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListPendingPublish(r.Context(), limitParam(r))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list contents pending publish", err)
			return
		}
		respondList(w, r, out, "pending publish")
	}
}

func ListPublishHistoryHandler(svc port.ContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListPublishHistory(r.Context(), limitParam(r))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list publish history", err)
			return
		}
		respondList(w, r, out, "publish history")
	}
}

func respondList(w http.ResponseWriter, r *http.Request, out []*model.Content, label string) {
	if out == nil {
		out = []*model.Content{}
	}
	RespondJSON(w, http.StatusOK, ListContentsResponse{Contents: out, Count: len(out)})
	logger.Infof(r.Context(), "✅  Successfully listed %d %s content(s)", len(out), label)
}

// limitParam reads the optional ?limit query parameter. Invalid values fall
// back to 0 so the use case applies its default.
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
