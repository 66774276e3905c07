package command

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdRaid     CommandType = "raid"
	CmdJoin     CommandType = "join"
	CmdLeave    CommandType = "leave"
	CmdHere     CommandType = "here"
	CmdStart    CommandType = "start"
	CmdEnd      CommandType = "end"
	CmdLocation CommandType = "location"
	CmdList     CommandType = "list"
	CmdInfo     CommandType = "info"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand reads a command line without its platform prefix, e.g.
// "join mewtwo-3 +2".
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
	case "raid", "new", "create":
		cmd.Type = CmdRaid
	case "join", "j":
		cmd.Type = CmdJoin
	case "leave", "unjoin":
		cmd.Type = CmdLeave
	case "here", "arrived":
		cmd.Type = CmdHere
	case "start", "time":
		cmd.Type = CmdStart
	case "end", "until":
		cmd.Type = CmdEnd
	case "location", "loc", "gym":
		cmd.Type = CmdLocation
	case "list", "ls", "raids":
		cmd.Type = CmdList
		cmd.Args = nil
	case "info", "status":
		cmd.Type = CmdInfo
	case "help":
		cmd.Type = CmdHelp
		cmd.Args = nil
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// GetHelpText renders the command reference using the platform's command
// prefix, such as "/raid " or "!".
func GetHelpText(prefix string) string {
	c := func(s string) string { return "`" + prefix + s + "`" }

	return `*Available Commands:*

*Raids:*
• ` + c("raid BOSS [END TIME]") + ` - Announce a raid (ex: mewtwo 3:45 pm)
• ` + c("list") + ` - List active raids in this channel
• ` + c("info [RAID ID]") + ` - Show a raid card

*Attending:*
• ` + c("join [RAID ID] [+N]") + ` - Join a raid, optionally bringing N guests
• ` + c("leave [RAID ID]") + ` - Leave a raid
• ` + c("here [RAID ID]") + ` - Mark yourself as arrived

*Details:*
• ` + c("start [RAID ID] TIME") + ` - Set when the group starts (ex: 4:10 pm)
• ` + c("end [RAID ID] TIME") + ` - Set when the raid disappears
• ` + c("location [RAID ID] GYM NAME") + ` - Set the gym

The raid id can be left out to use the last raid you interacted with.`
}
