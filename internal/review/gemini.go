package review

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/patimanas321/ForgeLens/internal/port"
)

const textReviewSystem = `You are a content safety and brand compliance reviewer for Instagram accounts. Analyze the given content and return a JSON object with exactly this structure:
{
  "verdict": "APPROVED" | "REJECTED" | "NEEDS_REVISION",
  "summary": "One-paragraph explanation of the verdict"
}

Rules:
- REJECT anything with political undertones, even subtle ones
- REJECT anything that could hurt religious, cultural, or minority sentiments
- NEEDS_REVISION for minor persona drift or quality issues
- APPROVE only if everything passes
Return ONLY the JSON, no markdown fences.`

const imageReviewSystem = `You are a visual content safety and brand compliance reviewer. You will be shown an image that was generated for an Instagram account. Analyze it and return a JSON object with exactly this structure:
{
  "verdict": "APPROVED" | "REJECTED" | "NEEDS_REVISION",
  "summary": "One-paragraph explanation of the verdict"
}

Rules:
- REJECT anything visually inappropriate, politically charged, or culturally insensitive
- NEEDS_REVISION for quality issues or minor brand misalignment
- APPROVE only if the image is safe, on-brand, and high quality
Return ONLY the JSON, no markdown fences.`

// GeminiReviewer performs nuanced review of generated content through the
// Gemini API, returning a structured verdict.
type GeminiReviewer struct {
	client     *genai.Client
	modelName  string
	httpClient *http.Client
}

var _ port.Reviewer = (*GeminiReviewer)(nil)

func NewGeminiReviewer(ctx context.Context, apiKey, modelName string) (*GeminiReviewer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiReviewer{
		client:     client,
		modelName:  modelName,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (r *GeminiReviewer) Close() {
	r.client.Close()
}

// newModel builds a fresh model handle for a single call. Model handles hold
// the mutable system instruction, so they are never shared across requests.
func (r *GeminiReviewer) newModel(systemPrompt string) *genai.GenerativeModel {
	return configureModel(r.client.GenerativeModel(r.modelName), systemPrompt)
}

func configureModel(model *genai.GenerativeModel, systemPrompt string) *genai.GenerativeModel {
	model.SetTemperature(0.2)
	model.SetTopP(0.95)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	return model
}

func (r *GeminiReviewer) ReviewText(ctx context.Context, text, accountContext string) (port.LLMReview, error) {
	userMsg := "Review the following content:\n\n" + text
	if accountContext != "" {
		userMsg += "\n\nAdditional context (persona/brand info):\n" + accountContext
	}

	resp, err := r.newModel(textReviewSystem).GenerateContent(ctx, genai.Text(userMsg))
	if err != nil {
		return port.LLMReview{}, fmt.Errorf("Gemini API error: %w", err)
	}
	return parseReview(extractText(resp))
}

func (r *GeminiReviewer) ReviewImage(ctx context.Context, imageURL, accountContext string) (port.LLMReview, error) {
	imageBytes, format, err := r.fetchImage(ctx, imageURL)
	if err != nil {
		return port.LLMReview{}, err
	}

	userMsg := "Review this generated Instagram image."
	if accountContext != "" {
		userMsg += "\n\nContext: " + accountContext
	}

	resp, err := r.newModel(imageReviewSystem).GenerateContent(ctx,
		genai.Text(userMsg),
		genai.ImageData(format, imageBytes),
	)
	if err != nil {
		return port.LLMReview{}, fmt.Errorf("Gemini API error: %w", err)
	}
	return parseReview(extractText(resp))
}

func (r *GeminiReviewer) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("error creating request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("HTTP request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status code fetching image: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("error reading image: %w", err)
	}

	format := "jpeg"
	switch resp.Header.Get("Content-Type") {
	case "image/png":
		format = "png"
	case "image/webp":
		format = "webp"
	}
	return data, format, nil
}

// parseReview decodes the model's JSON verdict. Markdown fences are stripped
// first; if decoding still fails, the outermost JSON object is extracted as a
// fallback before giving up.
func parseReview(raw string) (port.LLMReview, error) {
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var review port.LLMReview
	if err := json.Unmarshal([]byte(raw), &review); err != nil {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start < 0 || end <= start {
			return port.LLMReview{}, fmt.Errorf("review response is not JSON: %q", truncate(raw, 200))
		}
		if err := json.Unmarshal([]byte(raw[start:end+1]), &review); err != nil {
			return port.LLMReview{}, fmt.Errorf("review response is not JSON: %q", truncate(raw, 200))
		}
	}

	review.Verdict = strings.ToUpper(strings.TrimSpace(review.Verdict))
	switch review.Verdict {
	case port.VerdictApproved, port.VerdictRejected, port.VerdictNeedsRevision:
		return review, nil
	default:
		return port.LLMReview{}, fmt.Errorf("unknown review verdict %q", review.Verdict)
	}
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
