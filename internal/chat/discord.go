package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

type discordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordSender posts reminders through a Discord bot session
type DiscordSender struct {
	session *discordgo.Session
	api     discordSession
}

func NewDiscord(token string) (*DiscordSender, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("Logged in to Discord", "user", r.User.Username, "guilds", len(r.Guilds))
	})

	return &DiscordSender{session: session, api: session}, nil
}

// Open connects the gateway session
func (d *DiscordSender) Open() error {
	if d.session == nil {
		return nil
	}
	if err := d.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	return nil
}

func (d *DiscordSender) SendMessage(ctx context.Context, channelID, text string) error {
	if _, err := d.api.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send Discord message: %w", err)
	}
	return nil
}

func (d *DiscordSender) Close() error {
	if d.session == nil {
		return nil
	}
	return d.session.Close()
}
