package domain

import "time"

// OneWeek is the exact week length used for all offset arithmetic.
const OneWeek = 7 * 24 * time.Hour

// WeekKeyLayout is the layout of a week key (YYYY-MM-DD of the Monday).
const WeekKeyLayout = "2006-01-02"

// Defaults used when the roster file leaves them out.
const (
	DefaultReferenceMonday = "2026-01-05"
	DefaultTimezone        = "Asia/Dhaka"
	DefaultNotifyCron      = "30 22 * * 6"
	DefaultMorningStart    = "08:00"
	DefaultMorningEnd      = "16:00"
	DefaultEveningStart    = "12:00"
	DefaultEveningEnd      = "20:00"
)

// DefaultDisplayTimezones are shown next to the roster zone in notifications.
var DefaultDisplayTimezones = []string{"Europe/Oslo"}

// Week labels shown by viewers.
const (
	LabelCurrentWeek  = "Current Week"
	LabelNextWeek     = "Next Week"
	LabelPreviousWeek = "Previous Week"
)
