package mock

import (
	"context"
	"io"
)

// MockStorage implements port.Storage for tests.
type MockStorage struct {
	InitErr   error
	SaveErr   error
	RemoveErr error

	URLBase string

	InitCalled   bool
	SaveCalled   bool
	RemoveCalled bool

	SavedKey   string
	SavedData  []byte
	SavedOpts  map[string]string
	RemovedKey string
}

func (m *MockStorage) InitBucket() error {
	m.InitCalled = true
	return m.InitErr
}

func (m *MockStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.SavedKey = fileKey
	m.SavedOpts = opts
	if data, err := io.ReadAll(reader); err == nil {
		m.SavedData = data
	}
	return m.SaveErr
}

func (m *MockStorage) RemoveFile(ctx context.Context, fileKey string) error {
	m.RemoveCalled = true
	m.RemovedKey = fileKey
	return m.RemoveErr
}

func (m *MockStorage) PublicURL(fileKey string) string {
	if m.URLBase == "" {
		return "https://cdn.test/" + fileKey
	}
	return m.URLBase + "/" + fileKey
}
