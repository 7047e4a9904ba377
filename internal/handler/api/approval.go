package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/logger"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/usecase/content"
	"github.com/patimanas321/ForgeLens/internal/validation"
)

type ApprovalRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

func ApproveContentHandler(svc port.ApprovalGate) http.HandlerFunc {
	return decisionHandler("approve", false, func(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
		return svc.Approve(ctx, id, notes)
	})
}

func RejectContentHandler(svc port.ApprovalGate) http.HandlerFunc {
	return decisionHandler("reject", false, func(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
		return svc.Reject(ctx, id, notes)
	})
}

// RequestEditsHandler requires notes: an edit request without direction is
// useless to whoever has to revise the content.
func RequestEditsHandler(svc port.ApprovalGate) http.HandlerFunc {
	return decisionHandler("request edits on", true, func(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
		return svc.RequestEdits(ctx, id, notes)
	})
}

func decisionHandler(verb string, requireNotes bool, decide func(ctx context.Context, id db.UUID, notes string) (*model.Content, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req ApprovalRequest
		// the notes body is optional
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			WriteError(w, http.StatusBadRequest, "Invalid request", err)
			return
		}

		if requireNotes && strings.TrimSpace(req.Notes) == "" {
			WriteError(w, http.StatusBadRequest, "Notes are required", nil)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := decide(r.Context(), id, req.Notes)
		if err != nil {
			var stateErr *content.InvalidStateTransitionError
			switch {
			case errors.Is(err, content.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Content not found", nil)
			case errors.As(err, &stateErr):
				WriteError(w, http.StatusConflict, stateErr.Error(), nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not "+verb+" content", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully handled %s for content #%s", verb, id)
	}
}
