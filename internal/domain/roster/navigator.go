package roster

import (
	"fmt"
	"time"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// Navigator is the week-browsing position of a viewer, in weeks relative to
// the currently active week. It is a value: operations return a new one.
type Navigator struct {
	Offset int
}

func (n Navigator) Next() Navigator {
	n.Offset++
	return n
}

func (n Navigator) Previous() Navigator {
	n.Offset--
	return n
}

func (n Navigator) Reset() Navigator {
	return Navigator{}
}

// TargetDate shifts now by whole weeks.
func (n Navigator) TargetDate(now time.Time) time.Time {
	return now.Add(time.Duration(n.Offset) * domain.OneWeek)
}

func (n Navigator) ViewedMonday(now time.Time, loc *time.Location) time.Time {
	return CanonicalMonday(n.TargetDate(now), loc)
}

func (n Navigator) ViewedWeek(now time.Time, loc *time.Location) entity.WeekKey {
	return KeyOf(n.ViewedMonday(now, loc))
}

// Label names a viewed week relative to the active week at now.
func Label(viewedMonday, now time.Time, loc *time.Location) string {
	diff := WeeksBetween(CanonicalMonday(now, loc), viewedMonday)
	switch {
	case diff == 0:
		return domain.LabelCurrentWeek
	case diff == 1:
		return domain.LabelNextWeek
	case diff == -1:
		return domain.LabelPreviousWeek
	case diff > 1:
		return fmt.Sprintf("%d Weeks from Now", diff)
	default:
		return fmt.Sprintf("%d Weeks Ago", -diff)
	}
}
