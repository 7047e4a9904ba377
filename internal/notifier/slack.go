package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patimanas321/ForgeLens/internal/port"
)

// SlackNotifier posts content summaries to a Slack incoming webhook so a
// human reviewer sees pending and published items without polling the API.
type SlackNotifier struct {
	httpClient *http.Client
	webhookURL string
}

var _ port.Notifier = (*SlackNotifier)(nil)

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		webhookURL: webhookURL,
	}
}

func (n *SlackNotifier) NotifyReviewPending(ctx context.Context, summary port.NotificationSummary) error {
	return n.post(ctx, ":camera: *New Instagram Content Pending Review*", "New Instagram Content Ready for Review", summary)
}

func (n *SlackNotifier) NotifyPublished(ctx context.Context, summary port.NotificationSummary) error {
	return n.post(ctx, ":white_check_mark: *Instagram Content Published*", "Content Published to Instagram", summary)
}

func (n *SlackNotifier) post(ctx context.Context, text, header string, summary port.NotificationSummary) error {
	fields := []map[string]string{
		{"type": "mrkdwn", "text": fmt.Sprintf("*ID:* `%s`", summary.ID)},
		{"type": "mrkdwn", "text": fmt.Sprintf("*Type:* %s %s", summary.MediaType, summary.PostType)},
		{"type": "mrkdwn", "text": fmt.Sprintf("*Account:* %s", summary.Account)},
		{"type": "mrkdwn", "text": fmt.Sprintf("*Topic:* %s", summary.Topic)},
	}
	if summary.CaptionPreview != "" {
		fields = append(fields, map[string]string{"type": "mrkdwn", "text": fmt.Sprintf("*Preview:* %s", summary.CaptionPreview)})
	}

	blocks := []map[string]any{
		{
			"type": "header",
			"text": map[string]string{"type": "plain_text", "text": header},
		},
		{
			"type":   "section",
			"fields": fields,
		},
	}
	if summary.MediaURL != "" {
		blocks = append(blocks, map[string]any{
			"type": "section",
			"text": map[string]string{"type": "mrkdwn", "text": fmt.Sprintf("*Media:* <%s|View Image/Video>", summary.MediaURL)},
		})
	}

	message := map[string]any{
		"text":   text,
		"blocks": blocks,
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshalling message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from Slack: %d", resp.StatusCode)
	}
	return nil
}
