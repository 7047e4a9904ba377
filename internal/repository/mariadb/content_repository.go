package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type ContentRepository struct {
	db *sql.DB
}

// compile-time check: *ContentRepository must satisfy port.ContentRepository
var _ port.ContentRepository = (*ContentRepository)(nil)

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

const contentColumns = `
      id, media_type, post_type, prompt, video_model_hint, aspect_ratio, resolution, output_format, duration_seconds,
      provider_url, blob_url, blob_key, size_bytes, width, height, carousel_urls,
      target_account_id, target_account_name, topic, caption, hashtags,
      generation_status, media_review_status, approval_status, publish_status,
      provider_request_id, provider_model_id, failure_message,
      media_review_score, media_review_notes, reviewer_notes,
      instagram_media_id, instagram_container_id,
      generation_requested_at, generation_submitted_at, generation_completed_at, generation_failed_at,
      media_reviewed_at, human_reviewed_at, published_at,
      created_at, updated_at`

func (r *ContentRepository) Create(ctx context.Context, c *model.Content) error {
	log.Printf("creating database record for content #%s, at status %q...", c.ID, c.GenerationStatus)

	const query = `
      INSERT INTO contents
        (id, media_type, post_type, prompt, video_model_hint, aspect_ratio, resolution, output_format, duration_seconds,
         provider_url, blob_url, blob_key, size_bytes, width, height, carousel_urls,
         target_account_id, target_account_name, topic, caption, hashtags,
         generation_status, media_review_status, approval_status, publish_status,
         provider_request_id, provider_model_id, failure_message,
         media_review_score, media_review_notes, reviewer_notes,
         instagram_media_id, instagram_container_id,
         generation_requested_at, generation_submitted_at, generation_completed_at, generation_failed_at,
         media_reviewed_at, human_reviewed_at, published_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.MediaType, c.PostType, c.Prompt, c.VideoModelHint, c.AspectRatio, c.Resolution, c.OutputFormat, c.DurationSeconds,
		c.ProviderURL, c.BlobURL, c.BlobKey, c.SizeBytes, c.Width, c.Height, c.CarouselURLs,
		c.TargetAccountID, c.TargetAccountName, c.Topic, c.Caption, c.Hashtags,
		c.GenerationStatus, c.MediaReviewStatus, c.ApprovalStatus, c.PublishStatus,
		c.ProviderRequestID, c.ProviderModelID, c.FailureMessage,
		c.MediaReviewScore, c.MediaReviewNotes, c.ReviewerNotes,
		c.InstagramMediaID, c.InstagramContainerID,
		c.GenerationRequestedAt, c.GenerationSubmittedAt, c.GenerationCompletedAt, c.GenerationFailedAt,
		c.MediaReviewedAt, c.HumanReviewedAt, c.PublishedAt,
	)
	return err
}

func (r *ContentRepository) Update(ctx context.Context, c *model.Content) error {
	log.Printf("updating database record for content #%s, at statuses %q/%q/%q/%q...",
		c.ID, c.GenerationStatus, c.MediaReviewStatus, c.ApprovalStatus, c.PublishStatus)

	const query = `
      UPDATE contents
      SET
        provider_url            = ?,
        blob_url                = ?,
        blob_key                = ?,
        size_bytes              = ?,
        width                   = ?,
        height                  = ?,
        carousel_urls           = ?,
        caption                 = ?,
        hashtags                = ?,
        generation_status       = ?,
        media_review_status     = ?,
        approval_status         = ?,
        publish_status          = ?,
        provider_request_id     = ?,
        provider_model_id       = ?,
        failure_message         = ?,
        media_review_score      = ?,
        media_review_notes      = ?,
        reviewer_notes          = ?,
        instagram_media_id      = ?,
        instagram_container_id  = ?,
        generation_submitted_at = ?,
        generation_completed_at = ?,
        generation_failed_at    = ?,
        media_reviewed_at       = ?,
        human_reviewed_at       = ?,
        published_at            = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		c.ProviderURL, c.BlobURL, c.BlobKey, c.SizeBytes, c.Width, c.Height, c.CarouselURLs,
		c.Caption, c.Hashtags,
		c.GenerationStatus, c.MediaReviewStatus, c.ApprovalStatus, c.PublishStatus,
		c.ProviderRequestID, c.ProviderModelID, c.FailureMessage,
		c.MediaReviewScore, c.MediaReviewNotes, c.ReviewerNotes,
		c.InstagramMediaID, c.InstagramContainerID,
		c.GenerationSubmittedAt, c.GenerationCompletedAt, c.GenerationFailedAt,
		c.MediaReviewedAt, c.HumanReviewedAt, c.PublishedAt,
		c.ID, // WHERE clause
	)
	return err
}

func (r *ContentRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Content, error) {
	log.Printf("fetching content #%s from the database...", ID)

	const query = `
      SELECT` + contentColumns + `
      FROM contents
      WHERE id = ?
    `
	return scanContent(r.db.QueryRowContext(ctx, query, ID))
}

func (r *ContentRepository) Delete(ctx context.Context, ID db.UUID) error {
	log.Printf("deleting database record for content #%s...", ID)

	const query = `DELETE FROM contents WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, ID)
	return err
}

func (r *ContentRepository) ListByGenerationStatus(ctx context.Context, status model.GenerationStatus, limit int) ([]*model.Content, error) {
	const query = `
      SELECT` + contentColumns + `
      FROM contents
      WHERE generation_status = ?
      ORDER BY generation_requested_at ASC
      LIMIT ?
    `
	return r.list(ctx, query, status, limit)
}

func (r *ContentRepository) ListByApprovalStatus(ctx context.Context, status model.ApprovalStatus, accountID string, limit int) ([]*model.Content, error) {
	if accountID != "" {
		const query = `
      SELECT` + contentColumns + `
      FROM contents
      WHERE approval_status = ? AND target_account_id = ?
      ORDER BY media_reviewed_at DESC
      LIMIT ?
    `
		return r.list(ctx, query, status, accountID, limit)
	}

	const query = `
      SELECT` + contentColumns + `
      FROM contents
      WHERE approval_status = ?
      ORDER BY media_reviewed_at DESC
      LIMIT ?
    `
	return r.list(ctx, query, status, limit)
}

func (r *ContentRepository) ListReviewed(ctx context.Context, limit int) ([]*model.Content, error) {
	const query = `
      SELECT` + contentColumns + `
      FROM contents
      WHERE approval_status IN (?, ?, ?)
      ORDER BY human_reviewed_at DESC
      LIMIT ?
    `
	return r.list(ctx, query,
		model.ApprovalStatusApproved, model.ApprovalStatusRejected, model.ApprovalStatusEditRequested,
		limit,
	)
}

func (r *ContentRepository) ListPublishable(ctx context.Context, publishStatus model.PublishStatus, limit int) ([]*model.Content, error) {
	const query = `
      SELECT` + contentColumns + `
      FROM contents
      WHERE approval_status = ? AND media_review_status = ? AND publish_status = ?
      ORDER BY human_reviewed_at DESC
      LIMIT ?
    `
	return r.list(ctx, query,
		model.ApprovalStatusApproved, model.MediaReviewStatusApproved, publishStatus,
		limit,
	)
}

func (r *ContentRepository) list(ctx context.Context, query string, args ...any) ([]*model.Content, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed closing rows: %v", err)
		}
	}()

	var out []*model.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (*model.Content, error) {
	var c model.Content
	if err := row.Scan(
		&c.ID, &c.MediaType, &c.PostType, &c.Prompt, &c.VideoModelHint, &c.AspectRatio, &c.Resolution, &c.OutputFormat, &c.DurationSeconds,
		&c.ProviderURL, &c.BlobURL, &c.BlobKey, &c.SizeBytes, &c.Width, &c.Height, &c.CarouselURLs,
		&c.TargetAccountID, &c.TargetAccountName, &c.Topic, &c.Caption, &c.Hashtags,
		&c.GenerationStatus, &c.MediaReviewStatus, &c.ApprovalStatus, &c.PublishStatus,
		&c.ProviderRequestID, &c.ProviderModelID, &c.FailureMessage,
		&c.MediaReviewScore, &c.MediaReviewNotes, &c.ReviewerNotes,
		&c.InstagramMediaID, &c.InstagramContainerID,
		&c.GenerationRequestedAt, &c.GenerationSubmittedAt, &c.GenerationCompletedAt, &c.GenerationFailedAt,
		&c.MediaReviewedAt, &c.HumanReviewedAt, &c.PublishedAt,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
