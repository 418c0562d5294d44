package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  string
	}{
		{name: "Should default to help", text: "   ", wantType: CmdHelp},
		{name: "Should parse list", text: "list", wantType: CmdList},
		{name: "Should parse list aliases", text: "Upcoming", wantType: CmdList},
		{name: "Should parse games with args", text: "games next", wantType: CmdGames, wantArgs: []string{"next"}},
		{name: "Should parse schedule alias", text: "schedule", wantType: CmdGames},
		{name: "Should parse status", text: " status ", wantType: CmdStatus},
		{name: "Should parse help", text: "help", wantType: CmdHelp},
		{name: "Should reject unknown command", text: "snooze 10m", wantErr: "unknown command: snooze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, cmd)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	for _, cmd := range []string{"list", "games", "status", "help"} {
		assert.Contains(t, help, "`/reminders "+cmd+"`")
	}
}
