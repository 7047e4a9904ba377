package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/patimanas321/ForgeLens/internal/port"
)

// MockGenerator implements port.Generator for tests.
type MockGenerator struct {
	Job       port.GenerationJob
	State     port.GenerationState
	ResultOut port.GenerationResult
	AssetData []byte

	SubmitErr   error
	StatusErr   error
	ResultErr   error
	DownloadErr error

	SubmitCalled   bool
	StatusCalled   bool
	ResultCalled   bool
	DownloadCalled bool

	SubmittedModelID string
	SubmittedArgs    map[string]any
	DownloadedURL    string
}

func (m *MockGenerator) Submit(ctx context.Context, modelID string, arguments map[string]any) (port.GenerationJob, error) {
	m.SubmitCalled = true
	m.SubmittedModelID = modelID
	m.SubmittedArgs = arguments
	if m.SubmitErr != nil {
		return port.GenerationJob{}, m.SubmitErr
	}
	return m.Job, nil
}

func (m *MockGenerator) Status(ctx context.Context, modelID, requestID string) (port.GenerationState, error) {
	m.StatusCalled = true
	if m.StatusErr != nil {
		return "", m.StatusErr
	}
	return m.State, nil
}

func (m *MockGenerator) Result(ctx context.Context, modelID, requestID string, mediaType string) (port.GenerationResult, error) {
	m.ResultCalled = true
	if m.ResultErr != nil {
		return port.GenerationResult{}, m.ResultErr
	}
	return m.ResultOut, nil
}

func (m *MockGenerator) Download(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	m.DownloadCalled = true
	m.DownloadedURL = url
	if m.DownloadErr != nil {
		return nil, 0, m.DownloadErr
	}
	return io.NopCloser(bytes.NewReader(m.AssetData)), int64(len(m.AssetData)), nil
}
