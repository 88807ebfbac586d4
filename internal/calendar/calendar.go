// Package calendar renders resolved assignments as an iCalendar feed.
package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

const productID = "-//ShiftMate//Weekly Roster//EN"

// Build returns one all-day Monday-Friday event per assignment. Event UIDs
// are derived from the week key so calendar clients update in place when an
// override changes the assignee.
func Build(name string, assignments []entity.Assignment, generated time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(name)
	cal.SetXWRCalName(name)

	for _, a := range assignments {
		ev := cal.AddEvent(fmt.Sprintf("roster-%s@shiftmate", a.Week))
		ev.SetDtStampTime(generated.UTC())
		ev.SetAllDayStartAt(a.WeekMonday)
		// DTEND is exclusive, so Saturday closes a Monday-Friday span
		ev.SetAllDayEndAt(a.WeekMonday.AddDate(0, 0, 5))
		ev.SetSummary(Summary(a))
		ev.SetDescription(Description(a))
	}

	return cal.Serialize()
}

func Summary(a entity.Assignment) string {
	return fmt.Sprintf("☀️ Morning: %s", a.Morning.Name)
}

func Description(a entity.Assignment) string {
	names := make([]string, 0, len(a.Evening))
	for _, p := range a.Evening {
		names = append(names, fmt.Sprintf("%s (%s)", p.Name, p.ShortCode))
	}

	desc := fmt.Sprintf("Week %s\nMorning: %s (%s)\nEvening: %s",
		a.WeekRange(), a.Morning.Name, a.Morning.ShortCode, strings.Join(names, ", "))
	if a.Overridden {
		desc += "\nManually assigned"
	}
	return desc
}
