package mock

import "context"

// MockPublisher implements port.Publisher for tests.
type MockPublisher struct {
	ImageContainerID    string
	ItemContainerIDs    []string
	VideoContainerID    string
	CarouselContainerID string
	Statuses            []string
	MediaID             string

	ImageErr    error
	ItemErr     error
	VideoErr    error
	CarouselErr error
	StatusErr   error
	PublishErr  error

	ImageCalled    bool
	VideoCalled    bool
	CarouselCalled bool
	PublishCalled  bool

	ImageURL    string
	VideoURL    string
	ItemURLs    []string
	ChildIDs    []string
	Caption     string
	PublishedID string
	StatusCalls int
}

func (m *MockPublisher) CreateImageContainer(ctx context.Context, imageURL, caption string) (string, error) {
	m.ImageCalled = true
	m.ImageURL = imageURL
	m.Caption = caption
	if m.ImageErr != nil {
		return "", m.ImageErr
	}
	return m.ImageContainerID, nil
}

func (m *MockPublisher) CreateCarouselItemContainer(ctx context.Context, imageURL string) (string, error) {
	m.ItemURLs = append(m.ItemURLs, imageURL)
	if m.ItemErr != nil {
		return "", m.ItemErr
	}
	idx := len(m.ItemURLs) - 1
	if idx < len(m.ItemContainerIDs) {
		return m.ItemContainerIDs[idx], nil
	}
	return "item", nil
}

func (m *MockPublisher) CreateVideoContainer(ctx context.Context, videoURL, caption string) (string, error) {
	m.VideoCalled = true
	m.VideoURL = videoURL
	m.Caption = caption
	if m.VideoErr != nil {
		return "", m.VideoErr
	}
	return m.VideoContainerID, nil
}

func (m *MockPublisher) CreateCarouselContainer(ctx context.Context, childIDs []string, caption string) (string, error) {
	m.CarouselCalled = true
	m.ChildIDs = childIDs
	m.Caption = caption
	if m.CarouselErr != nil {
		return "", m.CarouselErr
	}
	return m.CarouselContainerID, nil
}

func (m *MockPublisher) ContainerStatus(ctx context.Context, containerID string) (string, error) {
	if m.StatusErr != nil {
		return "", m.StatusErr
	}
	status := "FINISHED"
	if m.StatusCalls < len(m.Statuses) {
		status = m.Statuses[m.StatusCalls]
	}
	m.StatusCalls++
	return status, nil
}

func (m *MockPublisher) PublishContainer(ctx context.Context, containerID string) (string, error) {
	m.PublishCalled = true
	m.PublishedID = containerID
	if m.PublishErr != nil {
		return "", m.PublishErr
	}
	return m.MediaID, nil
}
