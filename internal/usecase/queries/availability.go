package queries

import (
	"context"
	"time"

	"groomly/internal/domain/schedule"
	"groomly/internal/pkg/clock"
	"groomly/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("invalid date")

// AvailabilityReadRepo feeds the scheduling core: service durations for the
// requested services and the busy intervals already booked on the day.
type AvailabilityReadRepo interface {
	DurationMinutes(ctx context.Context, serviceID int64) (int, bool, error)
	ActiveOnDate(ctx context.Context, date time.Time) ([]schedule.BusyInterval, error)
}

type AvailabilityQueries interface {
	// DaySlots lists the bookable start times on a date for the given service
	// selection, honoring the step and skipping slots whose window collides
	// with an existing appointment.
	DaySlots(ctx context.Context, date string, rawServiceIDs []string, stepMinutes int) (*DaySlotsView, error)
}

type availabilityQueriesImpl struct {
	repo        AvailabilityReadRepo
	clock       clock.Clock
	loc         *time.Location
	defaultStep int
}

func NewAvailabilityQueries(repo AvailabilityReadRepo, clk clock.Clock, loc *time.Location, defaultStep int) AvailabilityQueries {
	if defaultStep <= 0 {
		defaultStep = schedule.DefaultStep
	}
	return &availabilityQueriesImpl{
		repo:        repo,
		clock:       clk,
		loc:         loc,
		defaultStep: defaultStep,
	}
}

func (q *availabilityQueriesImpl) DaySlots(ctx context.Context, date string, rawServiceIDs []string, stepMinutes int) (*DaySlotsView, error) {
	day, err := time.ParseInLocation("2006-01-02", date, q.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	if stepMinutes <= 0 {
		stepMinutes = q.defaultStep
	}

	duration, err := schedule.ResolveDuration(ctx, q.repo, rawServiceIDs)
	if err != nil {
		return nil, err
	}

	checker := schedule.NewChecker(q.repo)
	slots, err := checker.AvailableSlots(ctx, day, duration, stepMinutes, q.clock.Now().In(q.loc))
	if err != nil {
		return nil, err
	}

	return &DaySlotsView{
		Date:            date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
