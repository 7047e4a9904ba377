package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type planReviewerSrv struct {
	repo     port.ContentRepository
	safety   port.SafetyAnalyzer
	reviewer port.Reviewer
	cfg      ReviewConfig
}

// NewPlanReviewer constructs a PlanReviewer implementation.
func NewPlanReviewer(repo port.ContentRepository, safety port.SafetyAnalyzer, reviewer port.Reviewer, cfg ReviewConfig) port.PlanReviewer {
	return &planReviewerSrv{repo: repo, safety: safety, reviewer: reviewer, cfg: cfg}
}

// ReviewContentPlan runs the same two-layer gate over the textual plan of a
// record before any asset exists: prompt, caption and hashtags. It is
// advisory and never mutates lifecycle state, callers decide what to do
// with a rejection.
func (s *planReviewerSrv) ReviewContentPlan(ctx context.Context, id db.UUID) (*port.ReviewOutput, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	text := planText(c)
	severities, err := s.safety.AnalyzeText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("severity analysis failed for content #%s: %w", c.ID, err)
	}

	blocked := severities.Blocked(s.cfg.SeverityThreshold)
	if len(blocked) > 0 {
		return &port.ReviewOutput{
			ContentID:         c.ID,
			Status:            model.MediaReviewStatusRejected,
			Severities:        severities,
			BlockedCategories: blocked,
			Summary:           fmt.Sprintf("blocked categories: %v", blocked),
		}, nil
	}

	review, err := s.reviewer.ReviewText(ctx, text, accountContext(c))
	if err != nil {
		if !s.cfg.Strict {
			return &port.ReviewOutput{
				ContentID:  c.ID,
				Status:     model.MediaReviewStatusApproved,
				Severities: severities,
				Summary:    fmt.Sprintf("advisory review unavailable: %v", err),
			}, nil
		}
		return &port.ReviewOutput{
			ContentID:  c.ID,
			Status:     model.MediaReviewStatusNeedsRevision,
			Severities: severities,
			Summary:    fmt.Sprintf("review unavailable, held for revision: %v", err),
		}, nil
	}

	return &port.ReviewOutput{
		ContentID:  c.ID,
		Status:     verdictToStatus(review.Verdict),
		Severities: severities,
		Summary:    review.Summary,
	}, nil
}

func planText(c *model.Content) string {
	parts := []string{c.Prompt, c.Caption}
	if len(c.Hashtags) > 0 {
		parts = append(parts, strings.Join(c.Hashtags, " "))
	}
	return strings.Join(parts, "\n")
}

// reviewableText is every piece of text that ships with a record: the plan
// text plus the topic.
func reviewableText(c *model.Content) string {
	text := planText(c)
	if c.Topic != "" {
		text += "\n" + c.Topic
	}
	return text
}
