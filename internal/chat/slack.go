package chat

import (
	"context"
	"fmt"

	"github.com/diegoclair/game-reminder-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// SlackSender posts reminders as the Slack bot user
type SlackSender struct {
	client contract.SlackClient
}

func NewSlack(client contract.SlackClient) *SlackSender {
	return &SlackSender{client: client}
}

func (s *SlackSender) SendMessage(ctx context.Context, channelID, text string) error {
	_, _, err := s.client.PostMessageContext(
		ctx,
		channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}

func (s *SlackSender) Close() error {
	return nil
}
