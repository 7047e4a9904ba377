package safety

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

const (
	apiVersion = "2023-10-01"

	// API limit on analyzed text length.
	maxTextChars = 10000
)

// Client is an Azure AI Content Safety client. It scores text and images per
// harm category from 0 (safe) to 6 (severe).
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

var _ port.SafetyAnalyzer = (*Client)(nil)

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		apiKey:     apiKey,
	}
}

func (c *Client) AnalyzeText(ctx context.Context, text string) (model.Severities, error) {
	if strings.TrimSpace(text) == "" {
		return model.Severities{}, nil
	}
	if len(text) > maxTextChars {
		text = text[:maxTextChars]
	}
	return c.analyze(ctx, "text:analyze", map[string]any{"text": text})
}

// AnalyzeImage fetches the image and submits its bytes for analysis. The
// moderation API accepts raw content only, not URLs.
func (c *Client) AnalyzeImage(ctx context.Context, imageURL string) (model.Severities, error) {
	if imageURL == "" {
		return model.Severities{}, nil
	}

	imageBytes, err := c.fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return c.analyze(ctx, "image:analyze", map[string]any{
		"image": map[string]any{"content": base64.StdEncoding.EncodeToString(imageBytes)},
	})
}

func (c *Client) analyze(ctx context.Context, operation string, payload map[string]any) (model.Severities, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/contentsafety/%s?api-version=%s", c.endpoint, operation, apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code from moderation service: %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		CategoriesAnalysis []struct {
			Category string `json:"category"`
			Severity int    `json:"severity"`
		} `json:"categoriesAnalysis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	severities := make(model.Severities, len(result.CategoriesAnalysis))
	for _, item := range result.CategoriesAnalysis {
		severities[item.Category] = item.Severity
	}
	return severities, nil
}

func (c *Client) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code fetching image: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
