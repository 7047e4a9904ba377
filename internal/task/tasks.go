package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeGenerateContent = "content:generate"
	TypeReviewPending   = "content:notify_review"
	TypePublishContent  = "content:publish"
)

type ContentPayload struct {
	ContentID string `json:"content_id"`
}

// NewGenerateContentTask creates an Asynq task for submitting a content
// record to the generation provider.
func NewGenerateContentTask(contentID string) (*asynq.Task, error) {
	return newContentTask(TypeGenerateContent, contentID)
}

// NewReviewPendingTask creates an Asynq task for notifying humans that a
// record awaits approval.
func NewReviewPendingTask(contentID string) (*asynq.Task, error) {
	return newContentTask(TypeReviewPending, contentID)
}

// NewPublishContentTask creates an Asynq task for publishing an approved
// record.
func NewPublishContentTask(contentID string) (*asynq.Task, error) {
	return newContentTask(TypePublishContent, contentID)
}

func newContentTask(taskType, contentID string) (*asynq.Task, error) {
	data, err := json.Marshal(ContentPayload{ContentID: contentID})
	if err != nil {
		return nil, fmt.Errorf("could not marshal %s payload: %w", taskType, err)
	}
	return asynq.NewTask(taskType, data), nil
}

// ParseContentPayload parses a task payload to ContentPayload.
func ParseContentPayload(t *asynq.Task) (ContentPayload, error) {
	var p ContentPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ContentPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
