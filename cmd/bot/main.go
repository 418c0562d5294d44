package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/balldontlie"
	"github.com/diegoclair/game-reminder-bot/internal/chat"
	"github.com/diegoclair/game-reminder-bot/internal/config"
	"github.com/diegoclair/game-reminder-bot/internal/database"
	"github.com/diegoclair/game-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/game-reminder-bot/internal/domain/service"
	"github.com/diegoclair/game-reminder-bot/internal/handlers"
	"github.com/diegoclair/game-reminder-bot/internal/scheduler"
	"github.com/diegoclair/game-reminder-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

const shutdownTimeout = 10 * time.Second

type chatSender interface {
	contract.MessageSender
	Close() error
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found")
	}

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	location, err := cfg.Location()
	if err != nil {
		slog.Error("Invalid timezone", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Migrations completed successfully")

	sender, err := newChatSender(cfg)
	if err != nil {
		slog.Error("Failed to connect to chat platform", "platform", cfg.ChatPlatform, "error", err)
		os.Exit(1)
	}
	defer sender.Close()

	fetcher := balldontlie.NewClient(balldontlie.Config{
		BaseURL:  cfg.APIBaseURL,
		APIKey:   cfg.APIKey,
		TeamID:   cfg.TeamID,
		Location: location,
		Timeout:  cfg.HTTPTimeout,
	})

	sched := scheduler.New(location, slog.Default())
	sched.Start()

	svc := service.NewInstance(service.Options{
		Team: entity.TrackedTeam{
			ID:           cfg.TeamID,
			Name:         cfg.TeamName,
			MentionToken: cfg.MentionToken,
		},
		ChannelID:    cfg.ChannelID(),
		SourceZone:   cfg.SourceTimezone,
		Location:     location,
		ReminderLead: cfg.ReminderLead,
		StartupDelay: cfg.StartupDelay,
	}, database.NewInstance(db), fetcher, sched, sender)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Cancelled only after the scheduler has drained
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()

	if err := svc.Orchestrator.Start(jobCtx); err != nil {
		slog.Error("Weekly refresh not registered, no reminders will be scheduled", "error", err)
	}

	var slackHandler *handlers.SlackHandler
	if cfg.SlackSigningSecret != "" {
		slackHandler = handlers.New(svc.Orchestrator, cfg.SlackSigningSecret, location)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(slackHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Server shutdown incomplete", "error", err)
	}
	sched.Stop(shutdownCtx)
}

func newChatSender(cfg *config.Config) (chatSender, error) {
	if cfg.ChatPlatform == config.PlatformSlack {
		return chat.NewSlack(slack.New(cfg.SlackBotToken)), nil
	}

	discord, err := chat.NewDiscord(cfg.DiscordToken)
	if err != nil {
		return nil, err
	}
	if err := discord.Open(); err != nil {
		return nil, err
	}
	return discord, nil
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}
