package roster

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// Engine resolves dates into assignments. Results are recomputed on every
// call; the only inputs are the date and the override store contents.
type Engine struct {
	team      entity.Team
	reference time.Time
	loc       *time.Location
	store     contract.OverrideStore
	log       *zap.Logger
}

type Option func(*Engine)

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine builds an engine. A nil store means rotation only.
func NewEngine(team entity.Team, reference time.Time, loc *time.Location, store contract.OverrideStore, opts ...Option) (*Engine, error) {
	if len(team) == 0 {
		return nil, ErrEmptyTeam
	}
	if loc == nil {
		loc = time.Local
	}

	ref := reference.In(loc)
	e := &Engine{
		team:      append(entity.Team(nil), team...),
		reference: time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc),
		loc:       loc,
		store:     store,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Team() entity.Team {
	return append(entity.Team(nil), e.team...)
}

func (e *Engine) Location() *time.Location {
	return e.loc
}

func (e *Engine) Reference() time.Time {
	return e.reference
}

// Resolve returns the assignment for the week date belongs to. A failing
// store only disables the override layer for this call.
func (e *Engine) Resolve(ctx context.Context, date time.Time) entity.Assignment {
	monday := CanonicalMonday(date, e.loc)
	key := KeyOf(monday)

	morning, overridden := e.override(ctx, key)
	if !overridden {
		morning = e.team[RotationIndex(monday, e.reference, len(e.team))]
	}

	return entity.Assignment{
		WeekMonday: monday,
		Week:       key,
		Morning:    morning,
		Evening:    e.team.Without(morning.ID),
		Overridden: overridden,
	}
}

// HasOverride reports whether the week has an override naming a current
// team member.
func (e *Engine) HasOverride(ctx context.Context, week entity.WeekKey) (bool, error) {
	if e.store == nil {
		return false, nil
	}
	id, ok, err := e.store.Get(ctx, week)
	if err != nil || !ok {
		return false, err
	}
	_, known := e.team.ByID(id)
	return known, nil
}

func (e *Engine) override(ctx context.Context, key entity.WeekKey) (entity.Person, bool) {
	if e.store == nil {
		return entity.Person{}, false
	}

	id, ok, err := e.store.Get(ctx, key)
	if err != nil {
		e.log.Warn("override store unavailable, using rotation", zap.String("week", key.String()), zap.Error(err))
		return entity.Person{}, false
	}
	if !ok {
		return entity.Person{}, false
	}

	p, known := e.team.ByID(id)
	if !known {
		e.log.Debug("ignoring override for unknown person", zap.String("week", key.String()), zap.Int("person_id", id))
		return entity.Person{}, false
	}
	return p, true
}
