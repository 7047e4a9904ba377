package instagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patimanas321/ForgeLens/internal/port"
)

const DefaultBaseURL = "https://graph.facebook.com/v21.0"

// Client talks to the Instagram Graph API for one account: it creates media
// containers and publishes them.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	accountID   string
}

// compile-time check: *Client must satisfy port.Publisher
var _ port.Publisher = (*Client)(nil)

func NewClient(baseURL, accessToken, accountID string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		baseURL:     baseURL,
		accessToken: accessToken,
		accountID:   accountID,
	}
}

func (c *Client) CreateImageContainer(ctx context.Context, imageURL, caption string) (string, error) {
	return c.createContainer(ctx, map[string]any{
		"image_url": imageURL,
		"caption":   caption,
	})
}

func (c *Client) CreateCarouselItemContainer(ctx context.Context, imageURL string) (string, error) {
	return c.createContainer(ctx, map[string]any{
		"image_url":        imageURL,
		"is_carousel_item": true,
	})
}

func (c *Client) CreateVideoContainer(ctx context.Context, videoURL, caption string) (string, error) {
	return c.createContainer(ctx, map[string]any{
		"media_type": "REELS",
		"video_url":  videoURL,
		"caption":    caption,
	})
}

func (c *Client) CreateCarouselContainer(ctx context.Context, childIDs []string, caption string) (string, error) {
	return c.createContainer(ctx, map[string]any{
		"media_type": "CAROUSEL",
		"children":   childIDs,
		"caption":    caption,
	})
}

func (c *Client) createContainer(ctx context.Context, payload map[string]any) (string, error) {
	payload["access_token"] = c.accessToken

	endpoint := fmt.Sprintf("%s/%s/media", c.baseURL, c.accountID)
	result, err := c.postJSON(ctx, endpoint, payload)
	if err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("no container ID returned from Instagram")
	}
	return result.ID, nil
}

// ContainerStatus reports the processing state of a container, one of
// FINISHED, IN_PROGRESS or ERROR.
func (c *Client) ContainerStatus(ctx context.Context, containerID string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s?fields=status_code&access_token=%s", c.baseURL, containerID, url.QueryEscape(c.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code from Instagram: %d", resp.StatusCode)
	}

	var result struct {
		StatusCode string `json:"status_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}
	return result.StatusCode, nil
}

func (c *Client) PublishContainer(ctx context.Context, containerID string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/media_publish", c.baseURL, c.accountID)
	result, err := c.postJSON(ctx, endpoint, map[string]any{
		"creation_id":  containerID,
		"access_token": c.accessToken,
	})
	if err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("no media ID returned from Instagram")
	}
	return result.ID, nil
}

type graphResult struct {
	ID string `json:"id"`
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload map[string]any) (graphResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return graphResult{}, fmt.Errorf("error marshalling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return graphResult{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return graphResult{}, fmt.Errorf("HTTP request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return graphResult{}, fmt.Errorf("unexpected status code from Instagram: %d: %s", resp.StatusCode, string(respBody))
	}

	var result graphResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return graphResult{}, fmt.Errorf("error parsing response: %w", err)
	}
	return result, nil
}
