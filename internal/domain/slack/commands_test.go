package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhrahman/shiftmate/internal/domain/roster"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "Should default to show", text: "  ", wantType: CmdShow},
		{name: "Should parse show with week", text: "show 2026-01-12", wantType: CmdShow, wantArgs: []string{"2026-01-12"}},
		{name: "Should parse next", text: "next", wantType: CmdNext, wantArgs: []string{}},
		{name: "Should parse previous alias", text: "previous", wantType: CmdPrev, wantArgs: []string{}},
		{name: "Should parse upcoming count", text: "upcoming 6", wantType: CmdUpcoming, wantArgs: []string{"6"}},
		{name: "Should parse morning", text: "morning JH +1", wantType: CmdMorning, wantArgs: []string{"JH", "+1"}},
		{name: "Should parse evening", text: "Evening pr al", wantType: CmdEvening, wantArgs: []string{"pr", "al"}},
		{name: "Should reject morning without person", text: "morning", wantErr: true},
		{name: "Should reject evening with one person", text: "evening JH", wantErr: true},
		{name: "Should reject a third evening id", text: "evening 1 2 3", wantErr: true},
		{name: "Should reject a second morning id", text: "morning 1 2", wantErr: true},
		{name: "Should parse evening ids with a signed offset", text: "evening 1 2 +3", wantType: CmdEvening, wantArgs: []string{"1", "2", "+3"}},
		{name: "Should parse reset alias", text: "clear", wantType: CmdReset, wantArgs: []string{}},
		{name: "Should reject unknown command", text: "dance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			if tt.wantArgs != nil {
				assert.Equal(t, tt.wantArgs, cmd.Args)
			}
		})
	}
}

func TestParseWeekRef(t *testing.T) {
	tests := []struct {
		arg     string
		want    WeekRef
		wantErr bool
	}{
		{arg: "", want: WeekRef{}},
		{arg: "0", want: WeekRef{}},
		{arg: "+1", want: WeekRef{Offset: 1}},
		{arg: "+12", want: WeekRef{Offset: 12}},
		{arg: "3", wantErr: true},
		{arg: "+", wantErr: true},
		{arg: "+-1", wantErr: true},
		{arg: "-2", want: WeekRef{Offset: -2}},
		{arg: "2026-01-12", want: WeekRef{Key: "2026-01-12"}},
		{arg: "2026-01-13", wantErr: true},
		{arg: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseWeekRef(tt.arg)
			if tt.wantErr {
				assert.ErrorIs(t, err, roster.ErrInvalidWeekKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckSelection(t *testing.T) {
	tests := []struct {
		name    string
		mode    CommandType
		args    []string
		wantErr bool
	}{
		{name: "Should accept one morning person", mode: CmdMorning, args: []string{"JH"}},
		{name: "Should accept a morning person with a week", mode: CmdMorning, args: []string{"1", "+2"}},
		{name: "Should accept a morning person with a date", mode: CmdMorning, args: []string{"1", "2026-01-19"}},
		{name: "Should reject a plain number after the morning person", mode: CmdMorning, args: []string{"1", "2"}, wantErr: true},
		{name: "Should accept two evening people with a week", mode: CmdEvening, args: []string{"1", "2", "-1"}},
		{name: "Should reject a third evening id", mode: CmdEvening, args: []string{"1", "2", "3"}, wantErr: true},
		{name: "Should reject too many evening arguments", mode: CmdEvening, args: []string{"1", "2", "3", "+1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSelection(tt.mode, tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, roster.ErrInvalidOverrideSelection)
				return
			}
			assert.NoError(t, err)
		})
	}
}
