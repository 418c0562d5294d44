package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ChatPlatform:     PlatformDiscord,
		DiscordToken:     "token",
		DiscordChannelID: "935115932852977674",
		TeamID:           26,
		TeamName:         "Kings",
		MentionToken:     "<@&935115932852977674>",
		SourceTimezone:   "America/New_York",
		ReminderLead:     time.Hour,
		StartupDelay:     5 * time.Second,
		APIBaseURL:       "https://api.balldontlie.io/v1",
		HTTPTimeout:      30 * time.Second,
		DatabasePath:     "./reminders.db",
		Port:             "3000",
		LogLevel:         "info",
	}
}

func TestLoad(t *testing.T) {
	t.Run("Should use defaults", func(t *testing.T) {
		t.Setenv("DISCORD_TOKEN", "")
		t.Setenv("TOKEN", "legacy-token")
		t.Setenv("TEAM_ID", "")
		t.Setenv("REMINDER_LEAD", "")

		cfg := Load()

		assert.Equal(t, PlatformDiscord, cfg.ChatPlatform)
		assert.Equal(t, "legacy-token", cfg.DiscordToken)
		assert.Equal(t, 26, cfg.TeamID)
		assert.Equal(t, "Kings", cfg.TeamName)
		assert.Equal(t, "America/New_York", cfg.SourceTimezone)
		assert.Equal(t, time.Hour, cfg.ReminderLead)
		assert.Equal(t, 5*time.Second, cfg.StartupDelay)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	})

	t.Run("Should read the environment", func(t *testing.T) {
		t.Setenv("CHAT_PLATFORM", "Slack")
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-1")
		t.Setenv("SLACK_CHANNEL_ID", "C123")
		t.Setenv("TEAM_ID", "14")
		t.Setenv("TEAM_NAME", "Lakers")
		t.Setenv("REMINDER_LEAD", "30m")
		t.Setenv("TIMEZONE", "Europe/Lisbon")

		cfg := Load()

		assert.Equal(t, PlatformSlack, cfg.ChatPlatform)
		assert.Equal(t, "C123", cfg.ChannelID())
		assert.Equal(t, 14, cfg.TeamID)
		assert.Equal(t, "Lakers", cfg.TeamName)
		assert.Equal(t, 30*time.Minute, cfg.ReminderLead)
		assert.Equal(t, "Europe/Lisbon", cfg.Timezone)
	})

	t.Run("Should keep defaults on unparsable numbers", func(t *testing.T) {
		t.Setenv("TEAM_ID", "kings")
		t.Setenv("STARTUP_DELAY", "soon")

		cfg := Load()

		assert.Equal(t, 26, cfg.TeamID)
		assert.Equal(t, 5*time.Second, cfg.StartupDelay)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Should accept a complete discord config",
			mutate: func(c *Config) {},
		},
		{
			name: "Should accept a complete slack config",
			mutate: func(c *Config) {
				c.ChatPlatform = PlatformSlack
				c.DiscordToken = ""
				c.DiscordChannelID = ""
				c.SlackBotToken = "xoxb-1"
				c.SlackChannelID = "C123"
			},
		},
		{
			name:    "Should require the discord token",
			mutate:  func(c *Config) { c.DiscordToken = "" },
			wantErr: "DiscordToken is required",
		},
		{
			name: "Should require the slack channel",
			mutate: func(c *Config) {
				c.ChatPlatform = PlatformSlack
				c.SlackBotToken = "xoxb-1"
			},
			wantErr: "SlackChannelID is required",
		},
		{
			name:    "Should reject an unknown platform",
			mutate:  func(c *Config) { c.ChatPlatform = "irc" },
			wantErr: "ChatPlatform must be one of [discord slack]",
		},
		{
			name:    "Should reject an unknown source timezone",
			mutate:  func(c *Config) { c.SourceTimezone = "Eastern" },
			wantErr: "SourceTimezone must be a valid IANA timezone",
		},
		{
			name:    "Should reject a non positive lead",
			mutate:  func(c *Config) { c.ReminderLead = 0 },
			wantErr: "ReminderLead must be greater than 0",
		},
		{
			name:    "Should reject a startup delay under a second",
			mutate:  func(c *Config) { c.StartupDelay = 300 * time.Millisecond },
			wantErr: "StartupDelay must be at least 1s",
		},
		{
			name:    "Should reject a bad API URL",
			mutate:  func(c *Config) { c.APIBaseURL = "not a url" },
			wantErr: "APIBaseURL must be a valid URL",
		},
		{
			name: "Should report every invalid field",
			mutate: func(c *Config) {
				c.TeamName = ""
				c.Port = "http"
			},
			wantErr: "TeamName is required, Port must be numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := validConfig()

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Timezone = "Asia/Tokyo"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	cfg.Timezone = "Nowhere/Land"
	_, err = cfg.Location()
	assert.Error(t, err)
}
