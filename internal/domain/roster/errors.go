package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOverrideSelection is returned when an override edit is rejected
	// before anything is written.
	ErrInvalidOverrideSelection = errors.New("invalid override selection")

	ErrUnknownPerson       = fmt.Errorf("%w: unknown person", ErrInvalidOverrideSelection)
	ErrUnsupportedTeamSize = fmt.Errorf("%w: evening selection needs a team of exactly %d", ErrInvalidOverrideSelection, eveningTeamSize)

	ErrInvalidWeekKey = errors.New("invalid week key")
	ErrEmptyTeam      = errors.New("team must have at least one person")
)
