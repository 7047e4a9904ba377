package mock

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/model"
)

// MockSafetyAnalyzer implements port.SafetyAnalyzer for tests. Severities is
// returned for both channels unless a per-channel override is set.
type MockSafetyAnalyzer struct {
	Severities      model.Severities
	TextSeverities  model.Severities
	ImageSeverities model.Severities

	TextErr  error
	ImageErr error

	TextCalled  bool
	ImageCalled bool

	AnalyzedText string
	AnalyzedURL  string
}

func (m *MockSafetyAnalyzer) AnalyzeText(ctx context.Context, text string) (model.Severities, error) {
	m.TextCalled = true
	m.AnalyzedText = text
	if m.TextErr != nil {
		return nil, m.TextErr
	}
	if m.TextSeverities != nil {
		return m.TextSeverities, nil
	}
	return m.Severities, nil
}

func (m *MockSafetyAnalyzer) AnalyzeImage(ctx context.Context, imageURL string) (model.Severities, error) {
	m.ImageCalled = true
	m.AnalyzedURL = imageURL
	if m.ImageErr != nil {
		return nil, m.ImageErr
	}
	if m.ImageSeverities != nil {
		return m.ImageSeverities, nil
	}
	return m.Severities, nil
}
