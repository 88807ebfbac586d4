package notifier

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"github.com/jhrahman/shiftmate/internal/config"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

func testShifts(t *testing.T) Shifts {
	t.Helper()

	dhaka, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	s, err := NewShifts(config.ShiftsConfig{
		Morning:          config.ShiftWindow{Start: "08:00", End: "16:00"},
		Evening:          config.ShiftWindow{Start: "12:00", End: "20:00"},
		DisplayTimezones: []string{"Europe/Oslo"},
	}, dhaka)
	require.NoError(t, err)
	return s
}

func testAssignment(s Shifts) entity.Assignment {
	return entity.Assignment{
		WeekMonday: time.Date(2026, 1, 5, 0, 0, 0, 0, s.Location),
		Week:       "2026-01-05",
		Morning:    entity.Person{ID: 1, Name: "Jahidur Rahman", ShortCode: "JH"},
		Evening: []entity.Person{
			{ID: 2, Name: "Mahmudur Rahman Protic", ShortCode: "PR"},
			{ID: 3, Name: "Alamin Abu Zaman", ShortCode: "AL"},
		},
	}
}
