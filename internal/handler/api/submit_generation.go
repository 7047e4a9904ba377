package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/patimanas321/ForgeLens/internal/logger"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/validation"
)

type SubmitGenerationRequest struct {
	MediaType         string   `json:"media_type" validate:"required,oneof=image video"`
	PostType          string   `json:"post_type" validate:"omitempty,oneof=post reel carousel story"`
	Prompt            string   `json:"prompt" validate:"required,max=4000"`
	AspectRatio       string   `json:"aspect_ratio" validate:"omitempty,max=10"`
	Resolution        string   `json:"resolution" validate:"omitempty,max=10"`
	OutputFormat      string   `json:"output_format" validate:"omitempty,oneof=jpeg png webp"`
	DurationSeconds   int      `json:"duration_seconds" validate:"omitempty,gte=1,lte=60"`
	VideoModelHint    string   `json:"video_model_hint" validate:"omitempty,max=120"`
	TargetAccountID   string   `json:"target_account_id" validate:"omitempty,max=80"`
	TargetAccountName string   `json:"target_account_name" validate:"omitempty,max=80"`
	Topic             string   `json:"topic" validate:"omitempty,max=200"`
	Caption           string   `json:"caption" validate:"omitempty,max=2200"`
	Hashtags          []string `json:"hashtags" validate:"omitempty,dive,max=100"`
}

func SubmitGenerationHandler(svc port.GenerationSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitGenerationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.SubmitGenerationInput{
			MediaType:         req.MediaType,
			PostType:          req.PostType,
			Prompt:            req.Prompt,
			AspectRatio:       req.AspectRatio,
			Resolution:        req.Resolution,
			OutputFormat:      req.OutputFormat,
			DurationSeconds:   req.DurationSeconds,
			VideoModelHint:    req.VideoModelHint,
			TargetAccountID:   req.TargetAccountID,
			TargetAccountName: req.TargetAccountName,
			Topic:             req.Topic,
			Caption:           req.Caption,
			Hashtags:          req.Hashtags,
		}
		out, err := svc.SubmitGeneration(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not submit generation", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully queued generation for content #%s", out.ID)
	}
}
