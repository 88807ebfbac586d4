package slack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
)

type CommandType string

const (
	CmdShow     CommandType = "show"
	CmdNext     CommandType = "next"
	CmdPrev     CommandType = "prev"
	CmdUpcoming CommandType = "upcoming"
	CmdTeam     CommandType = "team"
	CmdMorning  CommandType = "morning"
	CmdEvening  CommandType = "evening"
	CmdReset    CommandType = "reset"
	CmdNotify   CommandType = "notify"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdShow}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "show", "week", "now":
		cmd.Type = CmdShow
	case "next":
		cmd.Type = CmdNext
	case "prev", "previous":
		cmd.Type = CmdPrev
	case "upcoming", "ls":
		cmd.Type = CmdUpcoming
	case "team", "list":
		cmd.Type = CmdTeam
	case "morning":
		cmd.Type = CmdMorning
		if len(cmd.Args) < 1 {
			return nil, fmt.Errorf("usage: morning <who> [week]")
		}
		if err := CheckSelection(CmdMorning, cmd.Args); err != nil {
			return nil, err
		}
	case "evening":
		cmd.Type = CmdEvening
		if len(cmd.Args) < 2 {
			return nil, fmt.Errorf("usage: evening <who> <who> [week]")
		}
		if err := CheckSelection(CmdEvening, cmd.Args); err != nil {
			return nil, err
		}
	case "reset", "clear":
		cmd.Type = CmdReset
	case "notify":
		cmd.Type = CmdNotify
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// WeekRef is a week argument: either an offset from the current week or an
// explicit week key.
type WeekRef struct {
	Offset int
	Key    entity.WeekKey
}

// CheckSelection rejects a morning or evening edit that names more people
// than the mode takes. The optional week after the people must be a signed
// offset or a date; a plain number there is another person id.
func CheckSelection(mode CommandType, args []string) error {
	people, noun := 1, "person"
	if mode == CmdEvening {
		people, noun = 2, "people"
	}

	if len(args) > people+1 {
		return fmt.Errorf("%w: %s takes exactly %d %s and an optional week", roster.ErrInvalidOverrideSelection, mode, people, noun)
	}
	if len(args) == people+1 && isPlainNumber(args[people]) {
		return fmt.Errorf("%w: %s takes exactly %d %s, got %q as well", roster.ErrInvalidOverrideSelection, mode, people, noun, args[people])
	}
	return nil
}

// ParseWeekRef accepts "", "0", "+1", "-2" or "YYYY-MM-DD" (a Monday).
// Offsets other than 0 need an explicit sign so they never read like ids.
func ParseWeekRef(arg string) (WeekRef, error) {
	if arg == "" || arg == "0" {
		return WeekRef{}, nil
	}

	if isPlainNumber(arg) {
		return WeekRef{}, fmt.Errorf("%w: %q. Use +%s or -%s for an offset", roster.ErrInvalidWeekKey, arg, arg, arg)
	}

	if arg[0] == '+' || arg[0] == '-' {
		if offset, err := strconv.Atoi(arg); err == nil && isPlainNumber(arg[1:]) {
			return WeekRef{Offset: offset}, nil
		}
	}

	key := entity.WeekKey(arg)
	if err := roster.ValidateWeekKey(key); err != nil {
		return WeekRef{}, fmt.Errorf("%w: %q. Use YYYY-MM-DD (a Monday) or an offset like +1", roster.ErrInvalidWeekKey, arg)
	}
	return WeekRef{Key: key}, nil
}

func isPlainNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func GetHelpText() string {
	return `*Available Commands:*

*Viewing:*
• ` + "`/roster show [week]`" + ` - Show the roster for a week (default: current)
• ` + "`/roster next`" + ` - Show next week
• ` + "`/roster prev`" + ` - Show previous week
• ` + "`/roster upcoming [n]`" + ` - List the next n weeks (default 4)
• ` + "`/roster team`" + ` - List team members

*Overrides:*
• ` + "`/roster morning <who> [week]`" + ` - Pick the morning person
• ` + "`/roster evening <who> <who> [week]`" + ` - Pick both evening people, the third takes morning
• ` + "`/roster reset [week]`" + ` - Clear the override, back to rotation

*Notifications:*
• ` + "`/roster notify [week]`" + ` - Post the roster to the configured webhooks

_week_ is a Monday as YYYY-MM-DD or a signed offset like +1 or -2. _who_ is an id, short code or name.`
}
