package notify

import (
	"fmt"

	"github.com/raelum/obsidian-brain/internal/log"
	"github.com/slack-go/slack"
)

// SlackNotifier sends notifications via the Slack Bot API.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier creates a new SlackNotifier posting to the given
// channel.
func NewSlackNotifier(botToken, channel string) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(botToken),
		channel: channel,
	}
}

// Archived sends a notification for one archived task. Delivery errors
// are logged at debug level, never returned: an archive must not fail
// because Slack is down.
func (s *SlackNotifier) Archived(e Event) error {
	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, headline(e), false, false),
			nil, nil,
		),
		slack.NewSectionBlock(nil,
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*File:*\n`%s`", e.File), false, false),
			},
			nil,
		),
	}

	_, _, err := s.client.PostMessage(
		s.channel,
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		log.Debug("Failed to send Slack notification: %v", err)
	}
	return nil
}

// Ensure SlackNotifier implements Notifier.
var _ Notifier = (*SlackNotifier)(nil)
