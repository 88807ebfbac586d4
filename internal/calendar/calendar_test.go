package calendar

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

var (
	jh = entity.Person{ID: 1, Name: "Jahidur Rahman", ShortCode: "JH"}
	pr = entity.Person{ID: 2, Name: "Mahmudur Rahman Protic", ShortCode: "PR"}
	al = entity.Person{ID: 3, Name: "Alamin Abu Zaman", ShortCode: "AL"}
)

func TestBuild(t *testing.T) {
	assignments := []entity.Assignment{
		{
			WeekMonday: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			Week:       "2026-01-05",
			Morning:    jh,
			Evening:    []entity.Person{pr, al},
		},
		{
			WeekMonday: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			Week:       "2026-01-12",
			Morning:    al,
			Evening:    []entity.Person{jh, pr},
			Overridden: true,
		},
	}

	out := Build("Team Roster", assignments, time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC))

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "roster-2026-01-05@shiftmate", first.Id())
	assert.Equal(t, "☀️ Morning: Jahidur Rahman", first.GetProperty(ical.ComponentPropertySummary).Value)

	start := first.GetProperty(ical.ComponentPropertyDtStart)
	require.NotNil(t, start)
	assert.Equal(t, "20260105", start.Value)
	end := first.GetProperty(ical.ComponentPropertyDtEnd)
	require.NotNil(t, end)
	assert.Equal(t, "20260110", end.Value)

	assert.Contains(t, out, "X-WR-CALNAME:Team Roster")
}

func TestDescription(t *testing.T) {
	a := entity.Assignment{
		WeekMonday: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Morning:    al,
		Evening:    []entity.Person{jh, pr},
		Overridden: true,
	}

	desc := Description(a)
	assert.Contains(t, desc, "Week Jan 12 - Jan 16, 2026")
	assert.Contains(t, desc, "Evening: Jahidur Rahman (JH), Mahmudur Rahman Protic (PR)")
	assert.Contains(t, desc, "Manually assigned")
}
