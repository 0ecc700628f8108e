//go:build unit

package schedule_test

import (
	"context"
	"testing"
	"time"

	"groomly/internal/domain/schedule"
	"groomly/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointments struct {
	byDate map[string][]schedule.BusyInterval
	err    error
}

func (s *stubAppointments) ActiveOnDate(_ context.Context, date time.Time) ([]schedule.BusyInterval, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byDate[date.Format("2006-01-02")], nil
}

func civilDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckerIsFree(t *testing.T) {
	ctx := context.Background()
	day := civilDate(2025, time.October, 10)
	otherDay := civilDate(2025, time.October, 11)
	existingID := uuid.New()

	// one existing appointment holding [10:00, 11:00)
	source := &stubAppointments{byDate: map[string][]schedule.BusyInterval{
		"2025-10-10": {{ID: existingID, StartMinute: 10 * 60, DurationMinutes: 60}},
	}}
	checker := schedule.NewChecker(source)

	tests := []struct {
		name     string
		date     time.Time
		start    string
		duration int
		exclude  *uuid.UUID
		wantFree bool
	}{
		{name: "fully inside is taken", date: day, start: "10:15", duration: 30, wantFree: false},
		{name: "overlapping the start is taken", date: day, start: "09:30", duration: 60, wantFree: false},
		{name: "overlapping the end is taken", date: day, start: "10:30", duration: 60, wantFree: false},
		{name: "covering the whole booking is taken", date: day, start: "09:30", duration: 150, wantFree: false},
		{name: "ending exactly at the start is free", date: day, start: "09:00", duration: 60, wantFree: true},
		{name: "starting exactly at the end is free", date: day, start: "11:00", duration: 60, wantFree: true},
		{name: "another day is unaffected", date: otherDay, start: "10:30", duration: 60, wantFree: true},
		{name: "editing excludes itself", date: day, start: "10:00", duration: 60, exclude: &existingID, wantFree: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := checker.IsFree(ctx, tt.date, tt.start, tt.duration, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFree, free)
		})
	}

	t.Run("unknown exclude id excludes nothing", func(t *testing.T) {
		ghost := uuid.New()
		free, err := checker.IsFree(ctx, day, "10:15", 30, &ghost)
		require.NoError(t, err)
		assert.False(t, free)
	})

	t.Run("malformed start time", func(t *testing.T) {
		_, err := checker.IsFree(ctx, day, "10h15", 30, nil)
		assert.True(t, errs.Is(err, schedule.ErrInvalidTime))
	})

	t.Run("non-positive duration", func(t *testing.T) {
		_, err := checker.IsFree(ctx, day, "10:00", 0, nil)
		assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
	})

	t.Run("source failure propagates", func(t *testing.T) {
		broken := schedule.NewChecker(&stubAppointments{err: assert.AnError})
		_, err := broken.IsFree(ctx, day, "10:00", 30, nil)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCheckerAvailableSlots(t *testing.T) {
	ctx := context.Background()
	day := civilDate(2025, time.October, 10)

	source := &stubAppointments{byDate: map[string][]schedule.BusyInterval{
		"2025-10-10": {
			{ID: uuid.New(), StartMinute: 10 * 60, DurationMinutes: 60},  // [10:00, 11:00)
			{ID: uuid.New(), StartMinute: 16 * 60, DurationMinutes: 120}, // [16:00, 18:00)
		},
	}}
	checker := schedule.NewChecker(source)

	t.Run("future date keeps every free slot", func(t *testing.T) {
		now := time.Date(2025, time.October, 9, 15, 0, 0, 0, time.UTC)
		got, err := checker.AvailableSlots(ctx, day, 60, 30, now)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"08:00", "08:30", "09:00", "11:00", "11:30",
			"14:00", "14:30", "15:00",
		}, got)
	})

	t.Run("same day drops slots before the lead time cutoff", func(t *testing.T) {
		// 10:50 + 15m lead time puts the cutoff at 11:05
		now := time.Date(2025, time.October, 10, 10, 50, 0, 0, time.UTC)
		got, err := checker.AvailableSlots(ctx, day, 60, 30, now)
		require.NoError(t, err)

		assert.Equal(t, []string{"11:30", "14:00", "14:30", "15:00"}, got)
	})

	t.Run("an empty day offers the whole grid", func(t *testing.T) {
		empty := schedule.NewChecker(&stubAppointments{})
		now := time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)
		got, err := empty.AvailableSlots(ctx, day, 15, 15, now)
		require.NoError(t, err)
		assert.Len(t, got, 32)
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		now := time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)

		_, err := checker.AvailableSlots(ctx, day, 0, 30, now)
		assert.ErrorIs(t, err, schedule.ErrInvalidDuration)

		_, err = checker.AvailableSlots(ctx, day, 30, 0, now)
		assert.ErrorIs(t, err, schedule.ErrInvalidStep)
	})
}
