package roster

import (
	"math"
	"time"

	"github.com/jhrahman/shiftmate/internal/domain"
)

// RotationIndex maps a canonical Monday to the index of its auto-assigned
// morning person, with the reference Monday mapped to index 0.
func RotationIndex(monday, reference time.Time, teamSize int) int {
	if teamSize <= 0 {
		return 0
	}

	index := WeeksBetween(reference, monday) % teamSize
	if index < 0 {
		index += teamSize
	}
	return index
}

// WeeksBetween is the number of weeks from one Monday to another. The
// result is rounded, not truncated: a DST change makes the real distance an
// hour short or long and must not move a Monday into the neighbouring week.
func WeeksBetween(from, to time.Time) int {
	return int(math.Round(float64(to.Sub(from)) / float64(domain.OneWeek)))
}
