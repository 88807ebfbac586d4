package entity

import "time"

// WeekKey is the YYYY-MM-DD form of a canonical Monday, built from the
// Monday's local calendar components.
type WeekKey string

func (k WeekKey) String() string {
	return string(k)
}

// Assignment is the resolved morning/evening split for one week.
// It is derived on every call and never stored.
type Assignment struct {
	WeekMonday time.Time `json:"week_monday"`
	Week       WeekKey   `json:"week"`
	Morning    Person    `json:"morning"`
	Evening    []Person  `json:"evening"`
	Overridden bool      `json:"overridden"`
}

// WeekFriday is the last working day of the assignment's week.
func (a Assignment) WeekFriday() time.Time {
	return a.WeekMonday.AddDate(0, 0, 4)
}

// WeekRange renders the Monday-Friday span, e.g. "Jan 5 - Jan 9, 2026".
func (a Assignment) WeekRange() string {
	return a.WeekMonday.Format("Jan 2") + " - " + a.WeekFriday().Format("Jan 2, 2006")
}
