package command

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
		wantErr  bool
	}{
		{
			name:     "Should default to help on empty text",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:     "Should parse raid with end time",
			text:     "raid mewtwo 3:45 pm",
			wantType: CmdRaid,
			wantArgs: []string{"mewtwo", "3:45", "pm"},
		},
		{
			name:     "Should accept aliases case-insensitively",
			text:     "LOC mewtwo-3 Town Hall",
			wantType: CmdLocation,
			wantArgs: []string{"mewtwo-3", "Town", "Hall"},
		},
		{
			name:     "Should parse join without arguments",
			text:     "join",
			wantType: CmdJoin,
		},
		{
			name:     "Should drop arguments for list",
			text:     "list everything",
			wantType: CmdList,
		},
		{
			name:    "Should reject unknown commands",
			text:    "dance",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	text := GetHelpText("!")
	assert.Contains(t, text, "`!join [RAID ID] [+N]`")
	assert.NotContains(t, text, "/raid join")
}
