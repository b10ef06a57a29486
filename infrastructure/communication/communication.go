package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Notifier is what the web handlers see: a fire-and-forget channel for
// audit notices. Failures are the caller's to log, never to fail a request.
type Notifier interface {
	Info(message string) error
	Error(message string) error
}

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	FinanceChannelID string
	ErrorChannelID   string
}

// ConnectSlack builds the finance-channel notifier from the environment.
// Returns nil when no bot token is configured; callers treat nil as "no
// notifications".
func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil
	}
	financeCh := os.Getenv("SLACK_FINANCE_CHANNEL")
	errorCh := os.Getenv("SLACK_ERROR_CHANNEL")

	return NewSlack(token, SlackOption{FinanceChannelID: financeCh, ErrorChannelID: errorCh})
}

func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.FinanceChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}
