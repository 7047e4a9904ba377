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

type approvalGateSrv struct {
	repo       port.ContentRepository
	dispatcher port.TaskDispatcher
	cache      port.Cache
}

// NewApprovalGate constructs an ApprovalGate implementation.
func NewApprovalGate(repo port.ContentRepository, dispatcher port.TaskDispatcher, cache port.Cache) port.ApprovalGate {
	return &approvalGateSrv{repo: repo, dispatcher: dispatcher, cache: cache}
}

// Approve records the human verdict and forwards the record to the publish
// queue. The approval is the source of truth: a forwarding failure is
// logged, never rolled back, and recovered by re-enqueueing from the
// pending publish list.
func (s *approvalGateSrv) Approve(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
	c, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.ApprovalStatus = model.ApprovalStatusApproved
	c.ReviewerNotes = notes
	c.HumanReviewedAt = &now
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed updating content #%s: %w", c.ID, err)
	}
	s.invalidate(ctx, c.ID)

	if err := s.dispatcher.EnqueuePublishContent(ctx, c.ID); err != nil {
		log.Printf("failed enqueueing publish for approved content #%s: %v", c.ID, err)
	}

	return c, nil
}

// Reject records a final human rejection.
func (s *approvalGateSrv) Reject(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
	c, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.ApprovalStatus = model.ApprovalStatusRejected
	c.ReviewerNotes = notes
	c.HumanReviewedAt = &now
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed updating content #%s: %w", c.ID, err)
	}
	s.invalidate(ctx, c.ID)

	return c, nil
}

// RequestEdits sends the record back for revision without discarding it.
func (s *approvalGateSrv) RequestEdits(ctx context.Context, id db.UUID, notes string) (*model.Content, error) {
	c, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.ApprovalStatus = model.ApprovalStatusEditRequested
	if c.MediaReviewStatus.CanTransition(model.MediaReviewStatusNeedsRevision) {
		c.MediaReviewStatus = model.MediaReviewStatusNeedsRevision
	}
	c.ReviewerNotes = notes
	c.HumanReviewedAt = &now
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed updating content #%s: %w", c.ID, err)
	}
	s.invalidate(ctx, c.ID)

	return c, nil
}

// pending loads the record and enforces the gate precondition. The actual
// status is always reported back so a double click on "approve" surfaces
// as a conflict, not a silent success.
func (s *approvalGateSrv) pending(ctx context.Context, id db.UUID) (*model.Content, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.ApprovalStatus != model.ApprovalStatusPending {
		return nil, newApprovalConflict(c.ApprovalStatus)
	}
	return c, nil
}

func (s *approvalGateSrv) invalidate(ctx context.Context, id db.UUID) {
	if err := s.cache.DeleteContentDetails(ctx, id); err != nil {
		log.Printf("failed deleting cache for content #%s: %v", id, err)
	}
	if err := s.cache.DeleteEtagContentDetails(ctx, id); err != nil {
		log.Printf("failed deleting etag cache for content #%s: %v", id, err)
	}
}
