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

// PublishConfig tunes how long the publisher waits for the provider to
// finish processing a video container.
type PublishConfig struct {
	PollAttempts int
	PollInterval time.Duration
}

type contentPublisherSrv struct {
	repo     port.ContentRepository
	pub      port.Publisher
	notifier port.Notifier
	cfg      PublishConfig
}

// NewContentPublisher constructs a ContentPublisher implementation.
func NewContentPublisher(repo port.ContentRepository, pub port.Publisher, notifier port.Notifier, cfg PublishConfig) port.ContentPublisher {
	return &contentPublisherSrv{repo: repo, pub: pub, notifier: notifier, cfg: cfg}
}

// PublishContent pushes an approved record live. The queue message is not
// trusted: both approval gates are re-verified against the database, and an
// already published record short-circuits so redeliveries stay harmless.
func (s *contentPublisherSrv) PublishContent(ctx context.Context, id db.UUID) (*port.PublishOutput, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if c.PublishStatus == model.PublishStatusPublished {
		return &port.PublishOutput{
			ContentID:        c.ID,
			AlreadyPublished: true,
			MediaID:          c.InstagramMediaID,
			ContainerID:      c.InstagramContainerID,
		}, nil
	}
	if c.ApprovalStatus != model.ApprovalStatusApproved {
		return nil, &InvalidStateTransitionError{
			Field:   "approval_status",
			Current: string(c.ApprovalStatus),
			Wanted:  string(model.ApprovalStatusApproved),
		}
	}
	if c.MediaReviewStatus != model.MediaReviewStatusApproved {
		return nil, &InvalidStateTransitionError{
			Field:   "media_review_status",
			Current: string(c.MediaReviewStatus),
			Wanted:  string(model.MediaReviewStatusApproved),
		}
	}
	if c.BlobURL == "" {
		return nil, fmt.Errorf("content #%s has no public media URL", c.ID)
	}

	containerID, err := s.createContainer(ctx, c)
	if err != nil {
		return nil, err
	}

	mediaID, err := s.pub.PublishContainer(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed publishing container %q for content #%s: %w", containerID, c.ID, err)
	}

	now := time.Now().UTC()
	c.PublishStatus = model.PublishStatusPublished
	c.InstagramMediaID = mediaID
	c.InstagramContainerID = containerID
	c.PublishedAt = &now
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed updating content #%s after publish: %w", c.ID, err)
	}

	if err := s.notifier.NotifyPublished(ctx, port.NotificationSummary{
		ID:             c.ID.String(),
		MediaType:      c.MediaType,
		PostType:       c.PostType,
		Topic:          c.Topic,
		CaptionPreview: captionPreview(c.Caption),
		MediaURL:       c.BlobURL,
		Account:        c.TargetAccountName,
	}); err != nil {
		log.Printf("failed notifying publish of content #%s: %v", c.ID, err)
	}

	return &port.PublishOutput{
		ContentID:   c.ID,
		MediaID:     mediaID,
		ContainerID: containerID,
	}, nil
}

func (s *contentPublisherSrv) createContainer(ctx context.Context, c *model.Content) (string, error) {
	caption := composeCaption(c.Caption, c.Hashtags)

	switch {
	case c.PostType == model.PostTypeCarousel:
		if len(c.CarouselURLs) == 0 {
			return "", fmt.Errorf("content #%s: %w", c.ID, ErrNoCarouselAssets)
		}
		return s.createCarousel(ctx, c, caption)
	case c.IsVideo():
		containerID, err := s.pub.CreateVideoContainer(ctx, c.BlobURL, caption)
		if err != nil {
			return "", fmt.Errorf("failed creating video container for content #%s: %w", c.ID, err)
		}
		if err := s.waitForContainer(ctx, containerID); err != nil {
			return "", fmt.Errorf("video container %q for content #%s: %w", containerID, c.ID, err)
		}
		return containerID, nil
	default:
		containerID, err := s.pub.CreateImageContainer(ctx, c.BlobURL, caption)
		if err != nil {
			return "", fmt.Errorf("failed creating image container for content #%s: %w", c.ID, err)
		}
		return containerID, nil
	}
}

func (s *contentPublisherSrv) createCarousel(ctx context.Context, c *model.Content, caption string) (string, error) {
	childIDs := make([]string, 0, len(c.CarouselURLs))
	for _, url := range c.CarouselURLs {
		childID, err := s.pub.CreateCarouselItemContainer(ctx, url)
		if err != nil {
			return "", fmt.Errorf("failed creating carousel item for content #%s: %w", c.ID, err)
		}
		childIDs = append(childIDs, childID)
	}

	containerID, err := s.pub.CreateCarouselContainer(ctx, childIDs, caption)
	if err != nil {
		return "", fmt.Errorf("failed creating carousel container for content #%s: %w", c.ID, err)
	}
	return containerID, nil
}

// waitForContainer polls the provider until the container finishes
// processing, errors out, or the attempt budget runs out.
func (s *contentPublisherSrv) waitForContainer(ctx context.Context, containerID string) error {
	for attempt := 0; attempt < s.cfg.PollAttempts; attempt++ {
		status, err := s.pub.ContainerStatus(ctx, containerID)
		if err != nil {
			return fmt.Errorf("status check failed: %w", err)
		}
		switch status {
		case port.ContainerStatusFinished:
			return nil
		case port.ContainerStatusError:
			return errors.New("provider reported processing error")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.PollInterval):
		}
	}
	return fmt.Errorf("still processing after %d attempts", s.cfg.PollAttempts)
}
