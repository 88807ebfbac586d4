package roster

import (
	"context"
	"fmt"

	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// eveningTeamSize is the only team size where two evening picks leave
// exactly one morning candidate.
const eveningTeamSize = 3

// Editor validates and commits overrides. Rejected edits write nothing.
type Editor struct {
	team  entity.Team
	store contract.OverrideStore
}

func NewEditor(team entity.Team, store contract.OverrideStore) *Editor {
	return &Editor{
		team:  append(entity.Team(nil), team...),
		store: store,
	}
}

// CommitMorning stores personID as the morning assignee for week,
// replacing any previous override.
func (e *Editor) CommitMorning(ctx context.Context, week entity.WeekKey, personID int) error {
	if err := ValidateWeekKey(week); err != nil {
		return err
	}
	if _, ok := e.team.ByID(personID); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPerson, personID)
	}

	if err := e.store.Set(ctx, week, personID); err != nil {
		return fmt.Errorf("failed to save override for %s: %w", week, err)
	}
	return nil
}

// CommitEvening takes the two evening assignees and stores the remaining
// team member as the morning override. It returns that morning person.
func (e *Editor) CommitEvening(ctx context.Context, week entity.WeekKey, eveningIDs []int) (entity.Person, error) {
	if err := ValidateWeekKey(week); err != nil {
		return entity.Person{}, err
	}

	morning, err := e.deriveMorning(eveningIDs)
	if err != nil {
		return entity.Person{}, err
	}

	if err := e.store.Set(ctx, week, morning.ID); err != nil {
		return entity.Person{}, fmt.Errorf("failed to save override for %s: %w", week, err)
	}
	return morning, nil
}

// Reset removes the override so the week falls back to rotation.
func (e *Editor) Reset(ctx context.Context, week entity.WeekKey) error {
	if err := ValidateWeekKey(week); err != nil {
		return err
	}
	if err := e.store.Remove(ctx, week); err != nil {
		return fmt.Errorf("failed to remove override for %s: %w", week, err)
	}
	return nil
}

func (e *Editor) deriveMorning(eveningIDs []int) (entity.Person, error) {
	if len(e.team) != eveningTeamSize {
		return entity.Person{}, ErrUnsupportedTeamSize
	}
	if len(eveningIDs) != eveningTeamSize-1 {
		return entity.Person{}, fmt.Errorf("%w: select exactly %d people for the evening shift, got %d",
			ErrInvalidOverrideSelection, eveningTeamSize-1, len(eveningIDs))
	}

	selected := make(map[int]bool, len(eveningIDs))
	for _, id := range eveningIDs {
		if selected[id] {
			return entity.Person{}, fmt.Errorf("%w: person %d selected twice", ErrInvalidOverrideSelection, id)
		}
		if _, ok := e.team.ByID(id); !ok {
			return entity.Person{}, fmt.Errorf("%w: %d", ErrUnknownPerson, id)
		}
		selected[id] = true
	}

	for _, p := range e.team {
		if !selected[p.ID] {
			return p, nil
		}
	}
	// unreachable with unique team ids
	return entity.Person{}, ErrInvalidOverrideSelection
}
