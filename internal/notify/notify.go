// Package notify sends Slack notifications for archived tasks.
package notify

// Event describes one archived task.
type Event struct {
	// File is the document the task was archived from.
	File string

	// Task is the normalized task text.
	Task string

	// InProgress marks a progress archive rather than a completion.
	InProgress bool

	// Replaced is true when an earlier archived copy was updated in
	// place.
	Replaced bool
}

// Notifier defines the interface for sending archive notifications.
// Implementations must never fail the archive operation: delivery errors
// are logged and swallowed.
type Notifier interface {
	// Archived sends a notification for one archived task.
	Archived(e Event) error
}

// Config selects and configures a Notifier.
type Config struct {
	BotToken   string
	Channel    string
	WebhookURL string
}

// New creates a Notifier from config. A bot token plus channel selects the
// Bot API; otherwise a webhook URL selects the webhook notifier; with
// neither, notifications are a no-op.
func New(cfg Config) Notifier {
	if cfg.BotToken != "" && cfg.Channel != "" {
		return NewSlackNotifier(cfg.BotToken, cfg.Channel)
	}
	if cfg.WebhookURL != "" {
		return NewWebhookNotifier(cfg.WebhookURL)
	}
	return &NoopNotifier{}
}

// NoopNotifier is a Notifier that does nothing.
// Used when notifications are disabled.
type NoopNotifier struct{}

// Archived does nothing.
func (n *NoopNotifier) Archived(e Event) error { return nil }

// Ensure NoopNotifier implements Notifier.
var _ Notifier = (*NoopNotifier)(nil)
