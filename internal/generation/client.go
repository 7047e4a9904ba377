package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patimanas321/ForgeLens/internal/model"
	"github.com/patimanas321/ForgeLens/internal/port"
)

const DefaultBaseURL = "https://queue.fal.run"

// Client is a fal.ai queue API client. Jobs are submitted asynchronously,
// polled for status, then their result payload is fetched once completed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ port.Generator = (*Client)(nil)

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *Client) Submit(ctx context.Context, modelID string, arguments map[string]any) (port.GenerationJob, error) {
	body, err := json.Marshal(arguments)
	if err != nil {
		return port.GenerationJob{}, fmt.Errorf("error marshalling arguments: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return port.GenerationJob{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return port.GenerationJob{}, fmt.Errorf("HTTP request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return port.GenerationJob{}, fmt.Errorf("unexpected status code from provider: %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		RequestID string `json:"request_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return port.GenerationJob{}, fmt.Errorf("error parsing response: %w", err)
	}
	if result.RequestID == "" {
		return port.GenerationJob{}, fmt.Errorf("no request ID returned from provider")
	}
	return port.GenerationJob{RequestID: result.RequestID}, nil
}

func (c *Client) Status(ctx context.Context, modelID, requestID string) (port.GenerationState, error) {
	endpoint := fmt.Sprintf("%s/%s/requests/%s/status", c.baseURL, modelID, requestID)
	var result struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", err
	}

	switch result.Status {
	case "IN_QUEUE":
		return port.GenerationStateQueued, nil
	case "IN_PROGRESS":
		return port.GenerationStateInProgress, nil
	case "COMPLETED":
		return port.GenerationStateCompleted, nil
	default:
		return "", fmt.Errorf("unknown provider status %q", result.Status)
	}
}

func (c *Client) Result(ctx context.Context, modelID, requestID string, mediaType string) (port.GenerationResult, error) {
	endpoint := fmt.Sprintf("%s/%s/requests/%s", c.baseURL, modelID, requestID)
	var result struct {
		Images []struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		} `json:"images"`
		Video struct {
			URL string `json:"url"`
		} `json:"video"`
		Description string `json:"description"`
	}
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return port.GenerationResult{}, err
	}

	if mediaType == string(model.MediaTypeVideo) {
		if result.Video.URL == "" {
			return port.GenerationResult{}, fmt.Errorf("result has no video URL")
		}
		return port.GenerationResult{AssetURL: result.Video.URL}, nil
	}

	if len(result.Images) == 0 || result.Images[0].URL == "" {
		return port.GenerationResult{}, fmt.Errorf("result has no image URL")
	}
	img := result.Images[0]
	return port.GenerationResult{
		AssetURL:    img.URL,
		Width:       img.Width,
		Height:      img.Height,
		Description: result.Description,
	}, nil
}

// Download streams the generated asset from the provider CDN. The caller is
// responsible for closing the returned reader.
func (c *Client) Download(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP request error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, 0, fmt.Errorf("unexpected status code downloading asset: %d", resp.StatusCode)
	}
	return resp.Body, resp.ContentLength, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code from provider: %d: %s", resp.StatusCode, string(respBody))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}
	return nil
}
