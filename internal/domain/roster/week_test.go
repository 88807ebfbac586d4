package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

func TestCanonicalMonday(t *testing.T) {
	loc := mustLoc(t, "Asia/Dhaka")

	tests := []struct {
		name string
		in   time.Time
		want entity.WeekKey
	}{
		{name: "Should keep a Monday at midnight", in: date(loc, 2026, 1, 5, 0, 0), want: "2026-01-05"},
		{name: "Should floor a Monday afternoon", in: date(loc, 2026, 1, 5, 15, 30), want: "2026-01-05"},
		{name: "Should roll Friday back to its Monday", in: date(loc, 2026, 1, 9, 23, 59), want: "2026-01-05"},
		{name: "Should roll Saturday forward to next Monday", in: date(loc, 2026, 1, 10, 10, 0), want: "2026-01-12"},
		{name: "Should roll Sunday forward to next Monday", in: date(loc, 2026, 1, 11, 23, 0), want: "2026-01-12"},
		{name: "Should cross a month boundary on Saturday", in: date(loc, 2026, 1, 31, 9, 0), want: "2026-02-02"},
		{name: "Should cross a year boundary backwards", in: date(loc, 2026, 1, 1, 12, 0), want: "2025-12-29"},
		{name: "Should cross a year boundary forwards on Sunday", in: date(loc, 2025, 12, 28, 8, 0), want: "2025-12-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalMonday(tt.in, loc)

			assert.Equal(t, tt.want, KeyOf(got))
			assert.Equal(t, time.Monday, got.Weekday())
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, 0, got.Minute())
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestCanonicalMonday_Properties(t *testing.T) {
	loc := mustLoc(t, "Europe/Oslo")
	start := date(loc, 2025, 10, 6, 0, 0) // a Monday

	for week := 0; week < 60; week++ {
		monday := start.AddDate(0, 0, 7*week)

		for day := 0; day < 5; day++ {
			d := monday.AddDate(0, 0, day).Add(13 * time.Hour)
			require.Equal(t, KeyOf(monday), WeekKeyOf(d, loc), "weekday %s", d)
		}

		following := KeyOf(monday.AddDate(0, 0, 7))
		for _, day := range []int{5, 6} {
			d := monday.AddDate(0, 0, day).Add(20 * time.Hour)
			require.Equal(t, following, WeekKeyOf(d, loc), "weekend %s", d)
		}
	}
}

func TestKeyOf_UsesLocalComponents(t *testing.T) {
	loc := mustLoc(t, "Asia/Dhaka")

	// 20:00 UTC on Sunday is already 02:00 Monday in Dhaka.
	instant := time.Date(2026, 1, 4, 20, 0, 0, 0, time.UTC)
	monday := CanonicalMonday(instant, loc)

	assert.Equal(t, entity.WeekKey("2026-01-05"), KeyOf(monday))
	assert.Equal(t, "2026-01-04", monday.UTC().Format("2006-01-02"))
}

func TestValidateWeekKey(t *testing.T) {
	require.NoError(t, ValidateWeekKey("2026-01-05"))

	for _, k := range []entity.WeekKey{"2026-01-06", "2026-1-5", "", "next"} {
		err := ValidateWeekKey(k)
		require.ErrorIs(t, err, ErrInvalidWeekKey, "key %q", k)
	}
}

func TestParseWeekKey(t *testing.T) {
	loc := mustLoc(t, "Asia/Dhaka")

	got, err := ParseWeekKey("2026-01-12", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(date(loc, 2026, 1, 12, 0, 0)))

	_, err = ParseWeekKey("2026-01-13", loc)
	require.ErrorIs(t, err, ErrInvalidWeekKey)
}

func TestUpcomingMonday(t *testing.T) {
	loc := mustLoc(t, "Asia/Dhaka")

	tests := []struct {
		name string
		now  time.Time
		want entity.WeekKey
	}{
		{name: "Should pick next week on Saturday night", now: date(loc, 2026, 1, 10, 22, 30), want: "2026-01-12"},
		{name: "Should pick next week on Sunday", now: date(loc, 2026, 1, 11, 11, 0), want: "2026-01-12"},
		{name: "Should pick next week mid-week", now: date(loc, 2026, 1, 7, 9, 0), want: "2026-01-12"},
		{name: "Should pick the week starting right now", now: date(loc, 2026, 1, 5, 0, 0), want: "2026-01-05"},
		{name: "Should skip a week already under way", now: date(loc, 2026, 1, 5, 9, 0), want: "2026-01-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyOf(UpcomingMonday(tt.now, loc)))
		})
	}
}

func TestUpcomingMondays(t *testing.T) {
	loc := mustLoc(t, "Europe/Oslo")

	got, err := UpcomingMondays(date(loc, 2026, 3, 21, 12, 0), loc, 4) // Saturday before DST
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := []entity.WeekKey{"2026-03-23", "2026-03-30", "2026-04-06", "2026-04-13"}
	for i, m := range got {
		assert.Equal(t, want[i], KeyOf(m))
		assert.Equal(t, 0, m.Hour())
	}

	none, err := UpcomingMondays(time.Now(), loc, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
