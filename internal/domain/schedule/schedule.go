// Package schedule holds the scheduling core of the grooming shop: resolving
// a service selection into a total duration, enumerating the day's slot grid,
// and deciding slot availability against existing bookings. Everything here
// is a pure computation over injected collaborators; persistence, transport
// and clock all live outside.
package schedule

import (
	"fmt"
	"time"

	"groomly/internal/pkg/errs"
)

// Business-day constants, expressed as minutes since midnight. The shop opens
// at 08:00, closes at 18:00 and stops taking pets over the midday closure
// [12:00, 14:00).
const (
	OpenMinute      = 8 * 60
	CloseMinute     = 18 * 60
	ClosureStart    = 12 * 60
	ClosureEnd      = 14 * 60
	DefaultStep     = 15
	MinDurationMin  = 15
	BookingLeadTime = 15 * time.Minute
)

var (
	ErrInvalidTime     = errs.New("invalid time of day")
	ErrInvalidStep     = errs.New("slot step must be a positive number of minutes")
	ErrInvalidDuration = errs.New("duration must be a positive number of minutes")
	ErrOffGridStart    = errs.New("start time is not on the slot grid")
)

// ParseMinuteOfDay converts an "HH:MM" 24-hour string to minutes since
// midnight. Anything unparseable fails with ErrInvalidTime.
func ParseMinuteOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidTime)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinuteOfDay renders minutes since midnight as "HH:MM".
func FormatMinuteOfDay(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// SameDay reports whether two instants fall on the same calendar day when
// both are read in b's location. Appointment dates are civil dates; the
// location only matters for the "is this today" cutoff check.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
