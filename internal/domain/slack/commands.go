package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdList   CommandType = "list"
	CmdGames  CommandType = "games"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "list", "ls", "upcoming":
		cmd.Type = CmdList
	case "games", "schedule":
		cmd.Type = CmdGames
	case "status":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/reminders list`" + ` - Show upcoming game reminders
• ` + "`/reminders games`" + ` - Show this week's games
• ` + "`/reminders status`" + ` - Show the weekly refresh slot and pending reminders
• ` + "`/reminders help`" + ` - Show this message`
}
