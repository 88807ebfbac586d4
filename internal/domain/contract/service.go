package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

type RosterService interface {
	Team() entity.Team
	Resolve(ctx context.Context, date time.Time) entity.Assignment
	Week(ctx context.Context, offset int) entity.Assignment
	WeekOf(ctx context.Context, week entity.WeekKey) (entity.Assignment, error)
	Upcoming(ctx context.Context, weeks int) ([]entity.Assignment, error)
	Label(weekMonday time.Time) string
	CurrentWeekKey(offset int) entity.WeekKey
	SetMorning(ctx context.Context, week entity.WeekKey, personID int) error
	SetEvening(ctx context.Context, week entity.WeekKey, personIDs []int) error
	ClearOverride(ctx context.Context, week entity.WeekKey) error
	HasOverride(ctx context.Context, week entity.WeekKey) (bool, error)
	NotifyWeek(ctx context.Context, offset int) (entity.Assignment, error)
	NotifyUpcoming(ctx context.Context) (entity.Assignment, error)
	NotifiersConfigured() bool
}

// Notifier delivers a resolved assignment to an external channel.
// A single attempt is made; failures are returned to the caller.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, a entity.Assignment) error
}
