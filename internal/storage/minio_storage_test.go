package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/patimanas321/ForgeLens/internal/usecase/content"
)

type mockMinio struct {
	bucketExistsFn func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn   func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	removeObjectFn func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	putObjectFn    func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return m.removeObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, objectSize, opts)
}

func makeStorage(mockClient *mockMinio) *MinioStorage {
	return &MinioStorage{
		client:    mockClient,
		bucket:    "contents",
		publicURL: "https://cdn.test",
	}
}

func TestInitBucket(t *testing.T) {
	tests := []struct {
		name           string
		exists         bool
		existsErr      error
		makeErr        error
		wantMakeCalled bool
		wantErr        bool
	}{
		{
			name:           "bucket exists, no create",
			exists:         true,
			wantMakeCalled: false,
		},
		{
			name:           "bucket does not exist, create succeeds",
			exists:         false,
			wantMakeCalled: true,
		},
		{
			name:      "BucketExists error bubbles up",
			existsErr: errors.New("exist fail"),
			wantErr:   true,
		},
		{
			name:           "MakeBucket error bubbles up",
			exists:         false,
			makeErr:        errors.New("make fail"),
			wantMakeCalled: true,
			wantErr:        true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			makeCalled := false

			mock := &mockMinio{
				bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) {
					return tc.exists, tc.existsErr
				},
				makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
					makeCalled = true
					return tc.makeErr
				},
			}

			err := makeStorage(mock).InitBucket()
			if tc.wantErr {
				if !errors.Is(err, content.ErrInternal) {
					t.Fatalf("expected internal error, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if makeCalled != tc.wantMakeCalled {
				t.Errorf("MakeBucket called = %v; want %v", makeCalled, tc.wantMakeCalled)
			}
		})
	}
}

func TestSaveFile(t *testing.T) {
	var gotBucket, gotKey, gotContentType string
	var gotSize int64

	mock := &mockMinio{
		putObjectFn: func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotBucket = bucketName
			gotKey = objectName
			gotSize = objectSize
			gotContentType = opts.ContentType
			return minio.UploadInfo{}, nil
		},
	}

	data := []byte("asset bytes")
	err := makeStorage(mock).SaveFile(context.Background(), "contents/a.jpg", bytes.NewReader(data), int64(len(data)), map[string]string{"Content-Type": "image/jpeg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBucket != "contents" || gotKey != "contents/a.jpg" {
		t.Errorf("unexpected destination %s/%s", gotBucket, gotKey)
	}
	if gotSize != int64(len(data)) || gotContentType != "image/jpeg" {
		t.Errorf("unexpected size/content type: %d/%q", gotSize, gotContentType)
	}
}

func TestRemoveFile_NotFound(t *testing.T) {
	mock := &mockMinio{
		removeObjectFn: func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
			return minio.ErrorResponse{Code: "NoSuchKey"}
		},
	}

	err := makeStorage(mock).RemoveFile(context.Background(), "missing.jpg")
	if !errors.Is(err, content.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestRemoveFile_Success(t *testing.T) {
	var gotKey string
	mock := &mockMinio{
		removeObjectFn: func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
			gotKey = objectName
			return nil
		},
	}

	if err := makeStorage(mock).RemoveFile(context.Background(), "contents/a.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "contents/a.jpg" {
		t.Errorf("unexpected key %q", gotKey)
	}
}

func TestRemoveFile_Unauthorized(t *testing.T) {
	mock := &mockMinio{
		removeObjectFn: func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
			return minio.ErrorResponse{Code: "AccessDenied"}
		},
	}

	err := makeStorage(mock).RemoveFile(context.Background(), "a.jpg")
	if !errors.Is(err, content.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPublicURL(t *testing.T) {
	got := makeStorage(&mockMinio{}).PublicURL("contents/a.jpg")
	want := "https://cdn.test/contents/contents/a.jpg"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
