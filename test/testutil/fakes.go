package testutil

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

// StubGenerator stands in for the external generation provider. It hands
// out one request ID per submission and serves Asset as the finished file,
// so the pipeline can be exercised against real storage and queues without
// calling any SaaS.
type StubGenerator struct {
	mu       sync.Mutex
	Asset    []byte
	AssetURL string
	Width    int
	Height   int

	Submitted []string
}

func (g *StubGenerator) Submit(ctx context.Context, modelID string, arguments map[string]any) (port.GenerationJob, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := "req-" + string(rune('a'+len(g.Submitted)))
	g.Submitted = append(g.Submitted, modelID)
	return port.GenerationJob{RequestID: id}, nil
}

func (g *StubGenerator) Status(ctx context.Context, modelID, requestID string) (port.GenerationState, error) {
	return port.GenerationStateCompleted, nil
}

func (g *StubGenerator) Result(ctx context.Context, modelID, requestID, mediaType string) (port.GenerationResult, error) {
	return port.GenerationResult{AssetURL: g.AssetURL, Width: g.Width, Height: g.Height}, nil
}

func (g *StubGenerator) Download(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	return io.NopCloser(bytes.NewReader(g.Asset)), int64(len(g.Asset)), nil
}

// SubmitCount returns how many provider jobs were created.
func (g *StubGenerator) SubmitCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Submitted)
}

// StubSafety returns the same severity map for every analysis.
type StubSafety struct {
	Severities model.Severities
}

func (s *StubSafety) AnalyzeText(ctx context.Context, text string) (model.Severities, error) {
	return s.Severities, nil
}

func (s *StubSafety) AnalyzeImage(ctx context.Context, imageURL string) (model.Severities, error) {
	return s.Severities, nil
}

// StubReviewer returns a fixed LLM verdict.
type StubReviewer struct {
	Verdict string
	Summary string
}

func (r *StubReviewer) ReviewText(ctx context.Context, text, accountContext string) (port.LLMReview, error) {
	return port.LLMReview{Verdict: r.Verdict, Summary: r.Summary}, nil
}

func (r *StubReviewer) ReviewImage(ctx context.Context, imageURL, accountContext string) (port.LLMReview, error) {
	return port.LLMReview{Verdict: r.Verdict, Summary: r.Summary}, nil
}

// StubPublisher mimics the Graph API container flow and counts the external
// calls so tests can assert a duplicate delivery stays call-free.
type StubPublisher struct {
	mu             sync.Mutex
	containers     int
	PublishedCount int
}

func (p *StubPublisher) CreateImageContainer(ctx context.Context, imageURL, caption string) (string, error) {
	return p.nextContainer(), nil
}

func (p *StubPublisher) CreateCarouselItemContainer(ctx context.Context, imageURL string) (string, error) {
	return p.nextContainer(), nil
}

func (p *StubPublisher) CreateVideoContainer(ctx context.Context, videoURL, caption string) (string, error) {
	return p.nextContainer(), nil
}

func (p *StubPublisher) CreateCarouselContainer(ctx context.Context, childIDs []string, caption string) (string, error) {
	return p.nextContainer(), nil
}

func (p *StubPublisher) ContainerStatus(ctx context.Context, containerID string) (string, error) {
	return port.ContainerStatusFinished, nil
}

func (p *StubPublisher) PublishContainer(ctx context.Context, containerID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.PublishedCount++
	return "ig-media-1", nil
}

func (p *StubPublisher) nextContainer() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.containers++
	return "ig-container-1"
}

// Publishes returns how many times PublishContainer was called.
func (p *StubPublisher) Publishes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.PublishedCount
}

// StubNotifier records side-channel notifications.
type StubNotifier struct {
	mu        sync.Mutex
	Pending   []port.NotificationSummary
	Published []port.NotificationSummary
}

func (n *StubNotifier) NotifyReviewPending(ctx context.Context, summary port.NotificationSummary) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Pending = append(n.Pending, summary)
	return nil
}

func (n *StubNotifier) NotifyPublished(ctx context.Context, summary port.NotificationSummary) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Published = append(n.Published, summary)
	return nil
}

// PendingCount returns how many review-pending alerts were sent.
func (n *StubNotifier) PendingCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Pending)
}
