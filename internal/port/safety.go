package port

import (
	"context"

	"github.com/patimanas321/ForgeLens/internal/model"
)

// SafetyAnalyzer is the external moderation service. It scores content per
// category from 0 (safe) to 6 (severe); thresholding is the caller's job.
type SafetyAnalyzer interface {
	AnalyzeText(ctx context.Context, text string) (model.Severities, error)
	AnalyzeImage(ctx context.Context, imageURL string) (model.Severities, error)
}
