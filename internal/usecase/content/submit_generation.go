package content

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type generationSubmitterSrv struct {
	repo       port.ContentRepository
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
}

// NewGenerationSubmitter constructs a GenerationSubmitter implementation.
func NewGenerationSubmitter(repo port.ContentRepository, dispatcher port.TaskDispatcher, genUUID port.UUIDGen) port.GenerationSubmitter {
	return &generationSubmitterSrv{repo: repo, dispatcher: dispatcher, genUUID: genUUID}
}

// SubmitGeneration creates the content record in its initial lifecycle state
// and enqueues it for generation. The record is deleted again if the enqueue
// fails, so a request never ends up accepted but unqueued.
func (s *generationSubmitterSrv) SubmitGeneration(ctx context.Context, in port.SubmitGenerationInput) (*model.Content, error) {
	now := time.Now().UTC()

	c := &model.Content{
		ID:                s.genUUID(),
		MediaType:         in.MediaType,
		PostType:          in.PostType,
		Prompt:            in.Prompt,
		VideoModelHint:    in.VideoModelHint,
		AspectRatio:       in.AspectRatio,
		Resolution:        in.Resolution,
		OutputFormat:      in.OutputFormat,
		TargetAccountID:   in.TargetAccountID,
		TargetAccountName: in.TargetAccountName,
		Topic:             in.Topic,
		Caption:           in.Caption,
		Hashtags:          model.Strings(in.Hashtags),

		GenerationStatus:  model.GenerationStatusQueued,
		MediaReviewStatus: model.MediaReviewStatusNone,
		ApprovalStatus:    model.ApprovalStatusNone,
		PublishStatus:     model.PublishStatusPending,

		GenerationRequestedAt: &now,
	}
	if in.PostType == "" {
		c.PostType = model.PostTypePost
	}
	if in.AspectRatio == "" {
		c.AspectRatio = "9:16"
	}
	if in.MediaType == model.MediaTypeImage && in.OutputFormat == "" {
		c.OutputFormat = "jpeg"
	}
	if in.DurationSeconds > 0 {
		d := in.DurationSeconds
		c.DurationSeconds = &d
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed creating content record: %w", err)
	}

	if err := s.dispatcher.EnqueueGenerateContent(ctx, c.ID); err != nil {
		if delErr := s.repo.Delete(ctx, c.ID); delErr != nil {
			log.Printf("failed deleting content #%s after enqueue failure: %v", c.ID, delErr)
		}
		return nil, fmt.Errorf("failed enqueueing generation for content #%s: %w", c.ID, err)
	}

	return c, nil
}
