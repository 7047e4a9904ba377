package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
)

var contentColumnNames = []string{
	"id", "media_type", "post_type", "prompt", "video_model_hint", "aspect_ratio", "resolution", "output_format", "duration_seconds",
	"provider_url", "blob_url", "blob_key", "size_bytes", "width", "height", "carousel_urls",
	"target_account_id", "target_account_name", "topic", "caption", "hashtags",
	"generation_status", "media_review_status", "approval_status", "publish_status",
	"provider_request_id", "provider_model_id", "failure_message",
	"media_review_score", "media_review_notes", "reviewer_notes",
	"instagram_media_id", "instagram_container_id",
	"generation_requested_at", "generation_submitted_at", "generation_completed_at", "generation_failed_at",
	"media_reviewed_at", "human_reviewed_at", "published_at",
	"created_at", "updated_at",
}

func mockContentID(t *testing.T) (db.UUID, []byte) {
	t.Helper()
	parsed := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	raw, err := parsed.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error marshalling uuid: %s", err)
	}
	return db.UUID(parsed), raw
}

func contentRow(idRaw []byte, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(contentColumnNames).AddRow(
		idRaw, "image", "post", "a misty forest", "", "9:16", "", "jpeg", nil,
		"https://fal.test/out.jpg", "https://cdn.test/contents/a.jpg", "contents/a.jpg", int64(12345), 720, 1280, nil,
		"acct-1", "wanderlens", "forests", "morning walk", []byte(`["nature"]`),
		"completed", "approved", "pending", "pending",
		"req-1", "fal-ai/flux-pro/v1.1", nil,
		[]byte(`{"violence":0}`), "on brand", "",
		"", "",
		now, now, now, nil,
		now, nil, nil,
		now, now,
	)
}

func TestContentRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	mockID, _ := mockContentID(t)
	c := &model.Content{
		ID:                mockID,
		MediaType:         model.MediaTypeImage,
		PostType:          model.PostTypePost,
		Prompt:            "a misty forest",
		AspectRatio:       "9:16",
		OutputFormat:      "jpeg",
		Hashtags:          model.Strings{"nature"},
		GenerationStatus:  model.GenerationStatusQueued,
		MediaReviewStatus: model.MediaReviewStatusNone,
		ApprovalStatus:    model.ApprovalStatusNone,
		PublishStatus:     model.PublishStatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO contents`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), c); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestContentRepository_Create_ExecError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	mockID, _ := mockContentID(t)
	c := &model.Content{ID: mockID, MediaType: model.MediaTypeImage, GenerationStatus: model.GenerationStatusQueued}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO contents`)).
		WillReturnError(errors.New("insert failed"))

	if err := repo.Create(context.Background(), c); err == nil {
		t.Error("expected error from Create(), got nil")
	}
}

func TestContentRepository_GetByID_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	mockID, idRaw := mockContentID(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM contents`)).
		WithArgs(mockID).
		WillReturnRows(contentRow(idRaw, now))

	c, err := repo.GetByID(context.Background(), mockID)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if c.ID != mockID {
		t.Errorf("expected ID %s, got %s", mockID, c.ID)
	}
	if c.GenerationStatus != model.GenerationStatusCompleted {
		t.Errorf("expected completed, got %q", c.GenerationStatus)
	}
	if c.MediaReviewStatus != model.MediaReviewStatusApproved {
		t.Errorf("expected media review approved, got %q", c.MediaReviewStatus)
	}
	if len(c.Hashtags) != 1 || c.Hashtags[0] != "nature" {
		t.Errorf("expected hashtags decoded, got %v", c.Hashtags)
	}
	if c.MediaReviewScore == nil || c.MediaReviewScore["violence"] != 0 {
		t.Errorf("expected severity map decoded, got %v", c.MediaReviewScore)
	}
	if c.SizeBytes == nil || *c.SizeBytes != 12345 {
		t.Errorf("expected size decoded, got %v", c.SizeBytes)
	}
	if c.GenerationFailedAt != nil {
		t.Error("expected nil failed timestamp")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestContentRepository_GetByID_NoRows(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	mockID, _ := mockContentID(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM contents`)).
		WithArgs(mockID).
		WillReturnRows(sqlmock.NewRows(contentColumnNames))

	if _, err := repo.GetByID(context.Background(), mockID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestContentRepository_Update_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	mockID, _ := mockContentID(t)
	c := &model.Content{
		ID:                mockID,
		GenerationStatus:  model.GenerationStatusCompleted,
		MediaReviewStatus: model.MediaReviewStatusApproved,
		ApprovalStatus:    model.ApprovalStatusPending,
		PublishStatus:     model.PublishStatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contents`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), c); err != nil {
		t.Errorf("Update() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestContentRepository_Delete_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	mockID, _ := mockContentID(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contents WHERE id = ?`)).
		WithArgs(mockID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), mockID); err != nil {
		t.Errorf("Delete() returned unexpected error: %v", err)
	}
}

func TestContentRepository_ListByGenerationStatus(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	_, idRaw := mockContentID(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE generation_status = ?`)).
		WithArgs(model.GenerationStatusSubmitted, 50).
		WillReturnRows(contentRow(idRaw, now))

	out, err := repo.ListByGenerationStatus(context.Background(), model.GenerationStatusSubmitted, 50)
	if err != nil {
		t.Fatalf("ListByGenerationStatus() returned unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
}

func TestContentRepository_ListByApprovalStatus_WithAccount(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	_, idRaw := mockContentID(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE approval_status = ? AND target_account_id = ?`)).
		WithArgs(model.ApprovalStatusPending, "acct-1", 50).
		WillReturnRows(contentRow(idRaw, now))

	out, err := repo.ListByApprovalStatus(context.Background(), model.ApprovalStatusPending, "acct-1", 50)
	if err != nil {
		t.Fatalf("ListByApprovalStatus() returned unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
}

func TestContentRepository_ListByApprovalStatus_NewestFirst(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	_, idRaw := mockContentID(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY media_reviewed_at DESC`)).
		WithArgs(model.ApprovalStatusPending, 50).
		WillReturnRows(contentRow(idRaw, now))

	if _, err := repo.ListByApprovalStatus(context.Background(), model.ApprovalStatusPending, "", 50); err != nil {
		t.Fatalf("ListByApprovalStatus() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestContentRepository_ListPublishable(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewContentRepository(sqlDB)

	_, idRaw := mockContentID(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE approval_status = ? AND media_review_status = ? AND publish_status = ?`)).
		WithArgs(model.ApprovalStatusApproved, model.MediaReviewStatusApproved, model.PublishStatusPending, 50).
		WillReturnRows(contentRow(idRaw, now))

	out, err := repo.ListPublishable(context.Background(), model.PublishStatusPending, 50)
	if err != nil {
		t.Fatalf("ListPublishable() returned unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
}
