package port

import (
	"context"
	"io"
)

// GenerationState is the provider-side status of an async generation job.
type GenerationState string

const (
	GenerationStateQueued     GenerationState = "queued"
	GenerationStateInProgress GenerationState = "in_progress"
	GenerationStateCompleted  GenerationState = "completed"
)

// GenerationJob is the handle returned by an async submission.
type GenerationJob struct {
	RequestID string
}

// GenerationResult is the completed output of a generation job.
type GenerationResult struct {
	AssetURL    string
	Width       int
	Height      int
	Description string
}

// Generator is the external media-generation provider (fal.ai style queue
// API): submit a job, poll its status, fetch the result, download the asset.
type Generator interface {
	Submit(ctx context.Context, modelID string, arguments map[string]any) (GenerationJob, error)
	Status(ctx context.Context, modelID, requestID string) (GenerationState, error)
	Result(ctx context.Context, modelID, requestID string, mediaType string) (GenerationResult, error)
	Download(ctx context.Context, url string) (io.ReadCloser, int64, error)
}
