package api

import (
	"errors"
	"net/http"

	"github.com/patimanas321/ForgeLens/internal/logger"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/usecase/content"
)

// ReviewPlanHandler runs the ad-hoc pre-generation review over a content
// plan's text. It never mutates the record; the verdict is advisory.
func ReviewPlanHandler(svc port.PlanReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.ReviewContentPlan(r.Context(), id)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Content not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not review content plan", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully reviewed plan for content #%s: %s", id, out.Status)
	}
}
