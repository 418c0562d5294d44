package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/game-reminder-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

const displayTimeLayout = "Mon, Jan 2 3:04 PM"

type SlackHandler struct {
	reminderService contract.ReminderService
	signingSecret   string
	location        *time.Location
}

func New(reminderService contract.ReminderService, signingSecret string, location *time.Location) *SlackHandler {
	if location == nil {
		location = time.Local
	}
	return &SlackHandler{
		reminderService: reminderService,
		signingSecret:   signingSecret,
		location:        location,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdList:
		return h.handleList(r)
	case slackcmd.CmdGames:
		return h.handleGames(r)
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleList(r *http.Request) *slack.Msg {
	reminders, err := h.reminderService.UpcomingReminders(r.Context())
	if err != nil {
		slog.Error("Failed to list reminders", "error", err)
		return h.createErrorResponse("Error listing reminders")
	}

	if len(reminders) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No upcoming reminders. Games are fetched once a week.",
		}
	}

	var list strings.Builder
	list.WriteString("*Upcoming reminders:*\n")
	for i, reminder := range reminders {
		list.WriteString(fmt.Sprintf("%d. %s (reminder at %s)\n",
			i+1,
			gameSummary(reminder.Message),
			reminder.TriggerAt.In(h.location).Format(displayTimeLayout),
		))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleGames(r *http.Request) *slack.Msg {
	games, err := h.reminderService.WeekGames(r.Context())
	if err != nil {
		slog.Error("Failed to list games", "error", err)
		return h.createErrorResponse("Error listing games")
	}

	if len(games) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No games this week.",
		}
	}

	var list strings.Builder
	list.WriteString("*Games this week:*\n")
	for _, game := range games {
		datePart, _, _ := strings.Cut(game.Date, "T")
		list.WriteString(fmt.Sprintf("• %s: %s @ %s (%s)\n",
			datePart,
			game.VisitorTeam.Name,
			game.HomeTeam.Name,
			game.StatusText,
		))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	status := h.reminderService.Status()

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*Weekly refresh:* every %s\n", status.Tick.String()))
	if !status.NextWeeklyRun.IsZero() {
		text.WriteString(fmt.Sprintf("*Next refresh:* %s\n", status.NextWeeklyRun.In(h.location).Format(displayTimeLayout)))
	}
	text.WriteString(fmt.Sprintf("*Pending reminders:* %d\n", status.PendingReminders))
	if status.LastCycleAt.IsZero() {
		text.WriteString("*Last refresh:* not run yet")
	} else {
		text.WriteString(fmt.Sprintf("*Last refresh:* %s (%d games)",
			status.LastCycleAt.In(h.location).Format(displayTimeLayout),
			status.LastCycleGames,
		))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// gameSummary returns the game-time line of a reminder message
func gameSummary(message string) string {
	_, line, found := strings.Cut(message, "\n")
	if !found {
		line = message
	}
	return strings.Trim(line, "`")
}
