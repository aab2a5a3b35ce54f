package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/raelum/obsidian-brain/internal/log"
)

// WebhookNotifier sends notifications via Slack incoming webhooks.
type WebhookNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// slackMessage represents a Slack webhook message payload.
type slackMessage struct {
	Text   string       `json:"text,omitempty"`
	Blocks []slackBlock `json:"blocks,omitempty"`
}

// slackBlock represents a Slack Block Kit block.
type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

// slackText represents text content in Slack.
type slackText struct {
	Type string `json:"type"` // "plain_text" or "mrkdwn"
	Text string `json:"text"`
}

// Archived sends a notification for one archived task. Delivery errors
// are logged at debug level, never returned: an archive must not fail
// because Slack is down.
func (w *WebhookNotifier) Archived(e Event) error {
	msg := slackMessage{
		Blocks: []slackBlock{
			{
				Type: "section",
				Text: &slackText{
					Type: "mrkdwn",
					Text: headline(e),
				},
			},
			{
				Type: "section",
				Fields: []slackText{
					{Type: "mrkdwn", Text: fmt.Sprintf("*File:*\n`%s`", e.File)},
				},
			},
		},
	}

	if err := w.send(msg); err != nil {
		log.Debug("Failed to send Slack notification: %v", err)
	}
	return nil
}

func headline(e Event) string {
	switch {
	case e.InProgress:
		return fmt.Sprintf(":hourglass_flowing_sand: *Task In Progress*\n`%s`", e.Task)
	case e.Replaced:
		return fmt.Sprintf(":white_check_mark: *Task Completed* (updated)\n`%s`", e.Task)
	default:
		return fmt.Sprintf(":white_check_mark: *Task Completed*\n`%s`", e.Task)
	}
}

func (w *WebhookNotifier) send(msg slackMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

// Ensure WebhookNotifier implements Notifier.
var _ Notifier = (*WebhookNotifier)(nil)
