package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhrahman/shiftmate/internal/config"
)

const (
	clockLayout12h = "03:04 PM"
	clockLayout24h = "15:04"
)

// Window is a shift's start and end as minutes after local midnight.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// Shifts renders shift windows in the roster zone and each display zone.
type Shifts struct {
	Location *time.Location
	Morning  Window
	Evening  Window
	Display  []*time.Location
	Clock24h bool
}

func NewShifts(cfg config.ShiftsConfig, loc *time.Location) (Shifts, error) {
	morning, err := parseWindow(cfg.Morning)
	if err != nil {
		return Shifts{}, err
	}
	evening, err := parseWindow(cfg.Evening)
	if err != nil {
		return Shifts{}, err
	}

	s := Shifts{Location: loc, Morning: morning, Evening: evening, Clock24h: cfg.Clock24h}
	for _, tz := range cfg.DisplayTimezones {
		display, err := time.LoadLocation(tz)
		if err != nil {
			return Shifts{}, fmt.Errorf("invalid display timezone %q: %w", tz, err)
		}
		s.Display = append(s.Display, display)
	}
	return s, nil
}

func parseWindow(w config.ShiftWindow) (Window, error) {
	start, err := parseClock(w.Start)
	if err != nil {
		return Window{}, err
	}
	end, err := parseClock(w.End)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end}, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid shift time %q. Use HH:MM (24-hour format)", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Lines renders the window on the given Monday, one line per zone, roster
// zone first. e.g. "Dhaka: 08:00 AM - 04:00 PM", or "Dhaka: 08:00 - 16:00"
// with Clock24h.
func (s Shifts) Lines(monday time.Time, w Window) []string {
	layout := clockLayout12h
	if s.Clock24h {
		layout = clockLayout24h
	}

	y, m, d := monday.In(s.Location).Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, s.Location)
	start := midnight.Add(w.Start)
	end := midnight.Add(w.End)

	zones := append([]*time.Location{s.Location}, s.Display...)
	lines := make([]string, 0, len(zones))
	for _, zone := range zones {
		lines = append(lines, fmt.Sprintf("%s: %s - %s",
			ZoneName(zone),
			start.In(zone).Format(layout),
			end.In(zone).Format(layout),
		))
	}
	return lines
}

// ZoneName turns "Europe/Oslo" into "Oslo".
func ZoneName(loc *time.Location) string {
	name := loc.String()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, "_", " ")
}
