package mock

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/port"
)

// MockReviewer implements port.Reviewer for tests.
type MockReviewer struct {
	Review port.LLMReview

	TextErr  error
	ImageErr error

	TextCalled  bool
	ImageCalled bool

	ReviewedText   string
	ReviewedURL    string
	AccountContext string
}

func (m *MockReviewer) ReviewText(ctx context.Context, text, accountContext string) (port.LLMReview, error) {
	m.TextCalled = true
	m.ReviewedText = text
	m.AccountContext = accountContext
	if m.TextErr != nil {
		return port.LLMReview{}, m.TextErr
	}
	return m.Review, nil
}

func (m *MockReviewer) ReviewImage(ctx context.Context, imageURL, accountContext string) (port.LLMReview, error) {
	m.ImageCalled = true
	m.ReviewedURL = imageURL
	m.AccountContext = accountContext
	if m.ImageErr != nil {
		return port.LLMReview{}, m.ImageErr
	}
	return m.Review, nil
}
