package roster

import (
	"fmt"
	"time"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// CanonicalMonday returns local midnight of the Monday that t's week is keyed
// to. Monday through Friday map to their own Monday; Saturday and Sunday roll
// forward to the Monday that starts the following week.
func CanonicalMonday(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)

	day := int(t.Weekday()) // Sunday=0 .. Saturday=6
	diff := t.Day() - day + 1
	if day == 0 {
		diff = t.Day() - 6
	}
	if day == 0 || day == 6 {
		diff += 7
	}

	// time.Date normalises day overflow across month and year boundaries.
	return time.Date(t.Year(), t.Month(), diff, 0, 0, 0, 0, loc)
}

// KeyOf serialises a canonical Monday using its own calendar components,
// never a UTC conversion.
func KeyOf(monday time.Time) entity.WeekKey {
	return entity.WeekKey(monday.Format(domain.WeekKeyLayout))
}

// WeekKeyOf is CanonicalMonday followed by KeyOf.
func WeekKeyOf(t time.Time, loc *time.Location) entity.WeekKey {
	return KeyOf(CanonicalMonday(t, loc))
}

// ValidateWeekKey checks that k is a YYYY-MM-DD date falling on a Monday.
func ValidateWeekKey(k entity.WeekKey) error {
	d, err := time.Parse(domain.WeekKeyLayout, string(k))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidWeekKey, string(k))
	}
	if d.Weekday() != time.Monday {
		return fmt.Errorf("%w: %s is a %s", ErrInvalidWeekKey, k, d.Weekday())
	}
	return nil
}

// ParseWeekKey turns a week key back into local midnight of its Monday.
func ParseWeekKey(k entity.WeekKey, loc *time.Location) (time.Time, error) {
	if err := ValidateWeekKey(k); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(domain.WeekKeyLayout, string(k), loc)
}

// UpcomingMonday is the Monday of the next week that has not started yet
// at now. On weekends that is already CanonicalMonday(now).
func UpcomingMonday(now time.Time, loc *time.Location) time.Time {
	monday := CanonicalMonday(now, loc)
	if monday.Before(now) {
		monday = time.Date(monday.Year(), monday.Month(), monday.Day()+7, 0, 0, 0, 0, monday.Location())
	}
	return monday
}
