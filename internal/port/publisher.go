package port

import "context"

// Container processing status codes reported by the publish provider.
const (
	ContainerStatusFinished   = "FINISHED"
	ContainerStatusInProgress = "IN_PROGRESS"
	ContainerStatusError      = "ERROR"
)

// Publisher is the Instagram-like Graph API: create a media container,
// wait for processing where needed, then publish it.
type Publisher interface {
	CreateImageContainer(ctx context.Context, imageURL, caption string) (string, error)
	CreateCarouselItemContainer(ctx context.Context, imageURL string) (string, error)
	CreateVideoContainer(ctx context.Context, videoURL, caption string) (string, error)
	CreateCarouselContainer(ctx context.Context, childIDs []string, caption string) (string, error)
	ContainerStatus(ctx context.Context, containerID string) (string, error)
	PublishContainer(ctx context.Context, containerID string) (string, error)
}
