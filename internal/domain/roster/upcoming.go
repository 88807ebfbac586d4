package roster

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// UpcomingMondays lists count canonical Mondays starting with the week
// from belongs to.
func UpcomingMondays(from time.Time, loc *time.Location, count int) ([]time.Time, error) {
	if count <= 0 {
		return nil, nil
	}

	start := CanonicalMonday(from, loc)
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.MO},
		Dtstart:   start,
		Count:     count,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly rule: %w", err)
	}

	mondays := rule.All()
	for i, m := range mondays {
		mondays[i] = CanonicalMonday(m, start.Location())
	}
	return mondays, nil
}
