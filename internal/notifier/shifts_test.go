package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhrahman/shiftmate/internal/config"
)

func TestShifts_Lines(t *testing.T) {
	s := testShifts(t)

	tests := []struct {
		name   string
		monday time.Time
		window Window
		want   []string
	}{
		{
			name:   "Should render winter morning shift",
			monday: time.Date(2026, 1, 5, 0, 0, 0, 0, s.Location),
			window: s.Morning,
			want:   []string{"Dhaka: 08:00 AM - 04:00 PM", "Oslo: 03:00 AM - 11:00 AM"},
		},
		{
			name:   "Should render winter evening shift",
			monday: time.Date(2026, 1, 5, 0, 0, 0, 0, s.Location),
			window: s.Evening,
			want:   []string{"Dhaka: 12:00 PM - 08:00 PM", "Oslo: 07:00 AM - 03:00 PM"},
		},
		{
			name:   "Should follow Oslo summer time",
			monday: time.Date(2026, 6, 1, 0, 0, 0, 0, s.Location),
			window: s.Morning,
			want:   []string{"Dhaka: 08:00 AM - 04:00 PM", "Oslo: 04:00 AM - 12:00 PM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Lines(tt.monday, tt.window))
		})
	}
}

func TestShifts_Lines24h(t *testing.T) {
	dhaka, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	s, err := NewShifts(config.ShiftsConfig{
		Morning:          config.ShiftWindow{Start: "08:00", End: "16:00"},
		Evening:          config.ShiftWindow{Start: "12:00", End: "20:00"},
		DisplayTimezones: []string{"Europe/Oslo"},
		Clock24h:         true,
	}, dhaka)
	require.NoError(t, err)

	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, dhaka)
	assert.Equal(t, []string{"Dhaka: 08:00 - 16:00", "Oslo: 03:00 - 11:00"}, s.Lines(monday, s.Morning))
	assert.Equal(t, []string{"Dhaka: 12:00 - 20:00", "Oslo: 07:00 - 15:00"}, s.Lines(monday, s.Evening))
}

func TestNewShifts_Invalid(t *testing.T) {
	_, err := NewShifts(config.ShiftsConfig{
		Morning: config.ShiftWindow{Start: "8am", End: "16:00"},
		Evening: config.ShiftWindow{Start: "12:00", End: "20:00"},
	}, time.UTC)
	assert.Error(t, err)

	_, err = NewShifts(config.ShiftsConfig{
		Morning:          config.ShiftWindow{Start: "08:00", End: "16:00"},
		Evening:          config.ShiftWindow{Start: "12:00", End: "20:00"},
		DisplayTimezones: []string{"Mars/Olympus"},
	}, time.UTC)
	assert.Error(t, err)
}

func TestZoneName(t *testing.T) {
	s := testShifts(t)
	require.Len(t, s.Display, 1)

	assert.Equal(t, "Dhaka", ZoneName(s.Location))
	assert.Equal(t, "Oslo", ZoneName(s.Display[0]))
	assert.Equal(t, "UTC", ZoneName(time.UTC))
}
