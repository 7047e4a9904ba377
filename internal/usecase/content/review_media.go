package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

// ReviewConfig tunes the automated review gate.
type ReviewConfig struct {
	// SeverityThreshold is the lowest per-category score that hard-blocks
	// a piece of content, no appeal to the LLM layer.
	SeverityThreshold int
	// Strict resolves LLM reviewer failures to needs_revision instead of
	// letting content through with an advisory note.
	Strict bool
}

type mediaReviewerSrv struct {
	repo       port.ContentRepository
	safety     port.SafetyAnalyzer
	reviewer   port.Reviewer
	dispatcher port.TaskDispatcher
	cfg        ReviewConfig
}

// NewMediaReviewer constructs a MediaReviewer implementation.
func NewMediaReviewer(repo port.ContentRepository, safety port.SafetyAnalyzer, reviewer port.Reviewer, dispatcher port.TaskDispatcher, cfg ReviewConfig) port.MediaReviewer {
	return &mediaReviewerSrv{repo: repo, safety: safety, reviewer: reviewer, dispatcher: dispatcher, cfg: cfg}
}

// ReviewGeneratedMedia runs the two-layer automated gate over a generated
// asset: a category severity scan first, then a nuanced LLM review. The
// severity layer has veto power; the LLM layer never sees hard-blocked
// content. Content approved here moves on to the human approval queue.
func (s *mediaReviewerSrv) ReviewGeneratedMedia(ctx context.Context, id db.UUID) (*port.ReviewOutput, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if c.GenerationStatus != model.GenerationStatusCompleted {
		return nil, &InvalidStateTransitionError{
			Field:   "generation_status",
			Current: string(c.GenerationStatus),
			Wanted:  string(model.GenerationStatusCompleted),
		}
	}
	if c.MediaReviewStatus == model.MediaReviewStatusNeedsRevision {
		c.MediaReviewStatus = model.MediaReviewStatusPending
	}
	if c.MediaReviewStatus != model.MediaReviewStatusPending {
		return nil, &InvalidStateTransitionError{
			Field:   "media_review_status",
			Current: string(c.MediaReviewStatus),
			Wanted:  string(model.MediaReviewStatusPending),
		}
	}

	severities, err := s.analyze(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("severity analysis failed for content #%s: %w", c.ID, err)
	}

	blocked := severities.Blocked(s.cfg.SeverityThreshold)
	if len(blocked) > 0 {
		out := &port.ReviewOutput{
			ContentID:         c.ID,
			Status:            model.MediaReviewStatusRejected,
			Severities:        severities,
			BlockedCategories: blocked,
			Summary:           fmt.Sprintf("blocked categories: %v", blocked),
		}
		return out, s.persistVerdict(ctx, c, out)
	}

	review, err := s.reviewLayer(ctx, c)
	if err != nil {
		if !s.cfg.Strict {
			out := &port.ReviewOutput{
				ContentID:  c.ID,
				Status:     model.MediaReviewStatusApproved,
				Severities: severities,
				Summary:    fmt.Sprintf("advisory review unavailable: %v", err),
			}
			return out, s.persistVerdict(ctx, c, out)
		}
		out := &port.ReviewOutput{
			ContentID:  c.ID,
			Status:     model.MediaReviewStatusNeedsRevision,
			Severities: severities,
			Summary:    fmt.Sprintf("review unavailable, held for revision: %v", err),
		}
		return out, s.persistVerdict(ctx, c, out)
	}

	out := &port.ReviewOutput{
		ContentID:  c.ID,
		Status:     verdictToStatus(review.Verdict),
		Severities: severities,
		Summary:    review.Summary,
	}
	return out, s.persistVerdict(ctx, c, out)
}

// analyze scores everything the record ships with. The textual metadata
// (prompt, caption, hashtags, topic) is always analyzed; for images the
// asset itself is scored too and the worst category score wins. Video
// frames are not analyzable through the moderation endpoint, so the text
// stands in for them.
func (s *mediaReviewerSrv) analyze(ctx context.Context, c *model.Content) (model.Severities, error) {
	severities, err := s.safety.AnalyzeText(ctx, reviewableText(c))
	if err != nil {
		return nil, err
	}
	if c.MediaType == model.MediaTypeImage {
		imageSeverities, err := s.safety.AnalyzeImage(ctx, c.BlobURL)
		if err != nil {
			return nil, err
		}
		severities = severities.Merge(imageSeverities)
	}
	return severities, nil
}

func (s *mediaReviewerSrv) reviewLayer(ctx context.Context, c *model.Content) (port.LLMReview, error) {
	if c.MediaType == model.MediaTypeImage {
		return s.reviewer.ReviewImage(ctx, c.BlobURL, accountContext(c))
	}
	return s.reviewer.ReviewText(ctx, c.Prompt+"\n"+c.Caption, accountContext(c))
}

func (s *mediaReviewerSrv) persistVerdict(ctx context.Context, c *model.Content, out *port.ReviewOutput) error {
	if !c.MediaReviewStatus.CanTransition(out.Status) {
		return &InvalidStateTransitionError{
			Field:   "media_review_status",
			Current: string(c.MediaReviewStatus),
			Wanted:  string(out.Status),
		}
	}

	now := time.Now().UTC()
	c.MediaReviewStatus = out.Status
	c.MediaReviewScore = out.Severities
	c.MediaReviewNotes = out.Summary
	c.MediaReviewedAt = &now
	if out.Status == model.MediaReviewStatusApproved && c.ApprovalStatus.CanTransition(model.ApprovalStatusPending) {
		c.ApprovalStatus = model.ApprovalStatusPending
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("failed updating content #%s after review: %w", c.ID, err)
	}

	// The record is already persisted; a lost notification is recoverable
	// from the pending list, so enqueue failures are only logged.
	if c.ApprovalStatus == model.ApprovalStatusPending {
		if err := s.dispatcher.EnqueueReviewPending(ctx, c.ID); err != nil {
			log.Printf("failed enqueueing review notification for content #%s: %v", c.ID, err)
		}
	}

	return nil
}

func verdictToStatus(verdict string) model.MediaReviewStatus {
	switch verdict {
	case port.VerdictApproved:
		return model.MediaReviewStatusApproved
	case port.VerdictRejected:
		return model.MediaReviewStatusRejected
	default:
		return model.MediaReviewStatusNeedsRevision
	}
}
