package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"
)

var validate = validator.New()

type Config struct {
	ChatPlatform string `validate:"oneof=discord slack"`

	DiscordToken     string `validate:"required_if=ChatPlatform discord"`
	DiscordChannelID string `validate:"required_if=ChatPlatform discord"`

	SlackBotToken      string `validate:"required_if=ChatPlatform slack"`
	SlackSigningSecret string
	SlackChannelID     string `validate:"required_if=ChatPlatform slack"`

	TeamID       int    `validate:"gt=0"`
	TeamName     string `validate:"required"`
	MentionToken string `validate:"required"`

	SourceTimezone string `validate:"required,timezone"`
	Timezone       string `validate:"omitempty,timezone"`

	ReminderLead time.Duration `validate:"gt=0"`
	StartupDelay time.Duration `validate:"gte=1s"`

	APIBaseURL  string `validate:"required,url"`
	APIKey      string
	HTTPTimeout time.Duration `validate:"gt=0"`

	DatabasePath string `validate:"required"`
	Port         string `validate:"required,numeric"`
	LogLevel     string `validate:"oneof=debug info warn error"`
}

func Load() *Config {
	return &Config{
		ChatPlatform: strings.ToLower(getEnv("CHAT_PLATFORM", PlatformDiscord)),

		DiscordToken:     getEnv("DISCORD_TOKEN", os.Getenv("TOKEN")),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),

		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackChannelID:     getEnv("SLACK_CHANNEL_ID", ""),

		TeamID:       getEnvInt("TEAM_ID", domain.DefaultTeamID),
		TeamName:     getEnv("TEAM_NAME", domain.DefaultTeamName),
		MentionToken: getEnv("MENTION_TOKEN", domain.DefaultMentionToken),

		SourceTimezone: getEnv("SOURCE_TIMEZONE", domain.DefaultSourceTimezone),
		Timezone:       getEnv("TIMEZONE", ""),

		ReminderLead: getEnvDuration("REMINDER_LEAD", domain.DefaultReminderLead),
		StartupDelay: getEnvDuration("STARTUP_DELAY", domain.DefaultStartupDelay),

		APIBaseURL:  getEnv("BALLDONTLIE_BASE_URL", "https://api.balldontlie.io/v1"),
		APIKey:      getEnv("BALLDONTLIE_API_KEY", ""),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 30*time.Second),

		DatabasePath: getEnv("DATABASE_PATH", "./reminders.db"),
		Port:         getEnv("PORT", "3000"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
}

// Validate checks the configuration and reports every invalid field
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, formatFieldError(fe))
	}
	return errors.New(strings.Join(messages, ", "))
}

// ChannelID returns the destination channel of the configured chat platform
func (c *Config) ChannelID() string {
	if c.ChatPlatform == PlatformSlack {
		return c.SlackChannelID
	}
	return c.DiscordChannelID
}

// Location returns the process timezone, time.Local unless TIMEZONE is set
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "timezone":
		return fmt.Sprintf("%s must be a valid IANA timezone", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
