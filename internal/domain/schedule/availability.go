package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BusyInterval is the slice of an existing appointment the checker cares
// about: where it starts and how long it holds the groomer.
type BusyInterval struct {
	ID              uuid.UUID
	StartMinute     int
	DurationMinutes int
}

// AppointmentSource supplies the appointments that hold a slot on a given
// calendar day (status scheduled or confirmed only). Order is not
// significant.
type AppointmentSource interface {
	ActiveOnDate(ctx context.Context, date time.Time) ([]BusyInterval, error)
}

// Checker decides slot availability against the bookings supplied by an
// injected read-only source. It never mutates anything and re-reads the
// source on every call, so it is safe for concurrent use.
type Checker struct {
	source AppointmentSource
}

func NewChecker(source AppointmentSource) *Checker {
	return &Checker{source: source}
}

// IsFree reports whether the half-open interval [start, start+duration)
// on date overlaps no active appointment. Passing excludeID skips that
// appointment, so editing a booking does not collide with itself; an
// excludeID matching nothing simply excludes nothing. Intervals that only
// touch at a boundary do not conflict, so back-to-back bookings are fine.
func (c *Checker) IsFree(ctx context.Context, date time.Time, start string, durationMinutes int, excludeID *uuid.UUID) (bool, error) {
	startMinute, err := ParseMinuteOfDay(start)
	if err != nil {
		return false, err
	}
	if durationMinutes <= 0 {
		return false, ErrInvalidDuration
	}
	endMinute := startMinute + durationMinutes

	busy, err := c.source.ActiveOnDate(ctx, date)
	if err != nil {
		return false, err
	}

	for _, b := range busy {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if overlaps(startMinute, endMinute, b.StartMinute, b.StartMinute+b.DurationMinutes) {
			return false, nil
		}
	}
	return true, nil
}

// AvailableSlots returns the ordered subsequence of the day's slot grid for
// which IsFree holds. When date is the same calendar day as now, slots
// starting earlier than now+BookingLeadTime are dropped; future dates are
// never filtered by time of day.
func (c *Checker) AvailableSlots(ctx context.Context, date time.Time, durationMinutes, stepMinutes int, now time.Time) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	grid, err := SlotMinutes(stepMinutes)
	if err != nil {
		return nil, err
	}

	busy, err := c.source.ActiveOnDate(ctx, date)
	if err != nil {
		return nil, err
	}

	var cutoff time.Time
	today := SameDay(date, now)
	if today {
		cutoff = now.Add(BookingLeadTime)
	}

	available := make([]string, 0, len(grid))
	for _, slot := range grid {
		if today {
			y, m, d := now.Date()
			startAt := time.Date(y, m, d, slot/60, slot%60, 0, 0, now.Location())
			if startAt.Before(cutoff) {
				continue
			}
		}
		if conflictsAny(slot, slot+durationMinutes, busy) {
			continue
		}
		available = append(available, FormatMinuteOfDay(slot))
	}
	return available, nil
}

func conflictsAny(startMinute, endMinute int, busy []BusyInterval) bool {
	for _, b := range busy {
		if overlaps(startMinute, endMinute, b.StartMinute, b.StartMinute+b.DurationMinutes) {
			return true
		}
	}
	return false
}

// Half-open intervals [a,b) and [c,d) conflict iff a < d && b > c.
func overlaps(a, b, c, d int) bool {
	return a < d && b > c
}
