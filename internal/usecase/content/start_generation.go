package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

// GenerationConfig names the provider models used per media type.
type GenerationConfig struct {
	ImageModel    string
	VideoModel    string
	VideoModelAlt string
}

type generationStarterSrv struct {
	repo port.ContentRepository
	gen  port.Generator
	cfg  GenerationConfig
}

// NewGenerationStarter constructs a GenerationStarter implementation.
func NewGenerationStarter(repo port.ContentRepository, gen port.Generator, cfg GenerationConfig) port.GenerationStarter {
	return &generationStarterSrv{repo: repo, gen: gen, cfg: cfg}
}

// StartGeneration submits the queued record to the external provider and
// stores the returned request handle. Redeliveries of a record that is no
// longer queued are no-ops.
func (s *generationStarterSrv) StartGeneration(ctx context.Context, id db.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if c.GenerationStatus != model.GenerationStatusQueued {
		log.Printf("content #%s is %q, skipping generation submit", c.ID, c.GenerationStatus)
		return nil
	}

	modelID := s.resolveModelID(c)
	args := buildProviderArguments(c, modelID)

	job, err := s.gen.Submit(ctx, modelID, args)
	if err != nil {
		if markErr := s.markAsFailed(ctx, c, err.Error()); markErr != nil {
			log.Printf("markAsFailed failed for content #%s: %v", c.ID, markErr)
		}
		return fmt.Errorf("provider submit failed for content #%s: %w", c.ID, err)
	}

	now := time.Now().UTC()
	c.GenerationStatus = model.GenerationStatusSubmitted
	c.ProviderModelID = modelID
	c.ProviderRequestID = job.RequestID
	c.GenerationSubmittedAt = &now
	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("failed updating content #%s after submit: %w", c.ID, err)
	}

	return nil
}

func (s *generationStarterSrv) resolveModelID(c *model.Content) string {
	if c.MediaType != model.MediaTypeVideo {
		return s.cfg.ImageModel
	}

	hint := strings.ToLower(strings.TrimSpace(c.VideoModelHint))
	switch {
	case hint == "":
		return s.cfg.VideoModel
	case strings.HasPrefix(hint, "fal-ai/"):
		return hint
	case strings.Contains(s.cfg.VideoModelAlt, hint):
		return s.cfg.VideoModelAlt
	case strings.Contains(s.cfg.VideoModel, hint):
		return s.cfg.VideoModel
	default:
		return s.cfg.VideoModel
	}
}

func (s *generationStarterSrv) markAsFailed(ctx context.Context, c *model.Content, reason string) error {
	now := time.Now().UTC()
	c.GenerationStatus = model.GenerationStatusFailed
	c.FailureMessage = &reason
	c.GenerationFailedAt = &now
	return s.repo.Update(ctx, c)
}

// buildProviderArguments shapes the request payload to what the resolved
// model accepts. Each model family has its own constraints on duration,
// aspect ratio and resolution.
func buildProviderArguments(c *model.Content, modelID string) map[string]any {
	if c.MediaType != model.MediaTypeVideo {
		args := map[string]any{
			"prompt":           c.Prompt,
			"num_images":       1,
			"output_format":    c.OutputFormat,
			"aspect_ratio":     c.AspectRatio,
			"safety_tolerance": "4",
		}
		if c.Resolution != "" {
			args["resolution"] = c.Resolution
		}
		return args
	}

	duration := 8
	if c.DurationSeconds != nil {
		duration = *c.DurationSeconds
	}

	switch {
	case strings.Contains(modelID, "sora"):
		return map[string]any{
			"prompt":       c.Prompt,
			"duration":     snapDuration(duration, []int{4, 8, 12}),
			"aspect_ratio": pickAspect(c.AspectRatio, []string{"9:16", "16:9"}),
			"resolution":   "720p",
		}
	case strings.Contains(modelID, "kling"):
		if duration < 3 {
			duration = 3
		}
		if duration > 15 {
			duration = 15
		}
		return map[string]any{
			"prompt":          c.Prompt,
			"duration":        duration,
			"aspect_ratio":    pickAspect(c.AspectRatio, []string{"9:16", "16:9", "1:1"}),
			"negative_prompt": "blur, distort, low quality",
			"generate_audio":  true,
		}
	default:
		return map[string]any{
			"prompt":       c.Prompt,
			"duration":     duration,
			"aspect_ratio": c.AspectRatio,
		}
	}
}

// snapDuration returns the allowed value closest to the requested one,
// rounding up on ties.
func snapDuration(want int, allowed []int) int {
	best := allowed[0]
	for _, a := range allowed[1:] {
		if abs(want-a) <= abs(want-best) {
			best = a
		}
	}
	return best
}

func pickAspect(want string, allowed []string) string {
	for _, a := range allowed {
		if want == a {
			return a
		}
	}
	return allowed[0]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
