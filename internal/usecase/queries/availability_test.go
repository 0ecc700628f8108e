//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"groomly/internal/domain/schedule"
	"groomly/internal/pkg/clock"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/queries"

	"github.com/stretchr/testify/suite"
)

type stubAvailabilityRepo struct {
	durations map[int64]int
	busy      []schedule.BusyInterval
}

func (s *stubAvailabilityRepo) DurationMinutes(_ context.Context, serviceID int64) (int, bool, error) {
	d, ok := s.durations[serviceID]
	return d, ok, nil
}

func (s *stubAvailabilityRepo) ActiveOnDate(_ context.Context, _ time.Time) ([]schedule.BusyInterval, error) {
	return s.busy, nil
}

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	repo *stubAvailabilityRepo
	clk  *clock.MockClock
	loc  *time.Location
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.loc = time.UTC
	s.repo = &stubAvailabilityRepo{
		durations: map[int64]int{1: 45, 2: 30},
	}
	// Well before the queried day so no past cutoff applies.
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 9, 0, 0, 0, s.loc))
}

func (s *AvailabilityQueriesTestSuite) newQueries() queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(s.repo, s.clk, s.loc, 15)
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestDaySlots() {
	ctx := context.Background()

	s.Run("success: sums the selected service durations", func() {
		view, err := s.newQueries().DaySlots(ctx, "2026-09-15", []string{"1", "2"}, 0)

		s.NoError(err)
		s.Equal("2026-09-15", view.Date)
		s.Equal(75, view.DurationMinutes)
		s.Contains(view.Slots, "08:00")
	})

	s.Run("success: empty selection falls back to the minimum duration", func() {
		view, err := s.newQueries().DaySlots(ctx, "2026-09-15", nil, 0)

		s.NoError(err)
		s.Equal(15, view.DurationMinutes)
	})

	s.Run("success: unknown and blank service IDs contribute nothing", func() {
		view, err := s.newQueries().DaySlots(ctx, "2026-09-15", []string{"999", "", "abc", "1"}, 0)

		s.NoError(err)
		s.Equal(45, view.DurationMinutes)
	})

	s.Run("success: booked intervals are excluded from the slots", func() {
		s.repo.busy = []schedule.BusyInterval{{StartMinute: 8 * 60, DurationMinutes: 45}}

		view, err := s.newQueries().DaySlots(ctx, "2026-09-15", []string{"2"}, 0)

		s.NoError(err)
		s.NotContains(view.Slots, "08:00")
		s.NotContains(view.Slots, "08:15")
		s.NotContains(view.Slots, "08:30")
		s.Contains(view.Slots, "08:45")

		s.repo.busy = nil
	})

	s.Run("success: lunch break never yields slots", func() {
		view, err := s.newQueries().DaySlots(ctx, "2026-09-15", []string{"2"}, 0)

		s.NoError(err)
		s.NotContains(view.Slots, "12:00")
		s.NotContains(view.Slots, "13:45")
		s.Contains(view.Slots, "14:00")
	})

	s.Run("success: zero step uses the configured default", func() {
		view, err := s.newQueries().DaySlots(ctx, "2026-09-15", []string{"2"}, 0)

		s.NoError(err)
		s.Contains(view.Slots, "08:15")
	})

	s.Run("success: an explicit step coarsens the grid", func() {
		view, err := s.newQueries().DaySlots(ctx, "2026-09-15", []string{"2"}, 60)

		s.NoError(err)
		s.Contains(view.Slots, "08:00")
		s.NotContains(view.Slots, "08:15")
		s.NotContains(view.Slots, "08:30")
	})

	s.Run("success: today hides starts inside the lead window", func() {
		s.clk.Set(time.Date(2026, 9, 15, 10, 0, 0, 0, s.loc))
		defer s.clk.Set(time.Date(2026, 9, 1, 9, 0, 0, 0, s.loc))

		view, err := s.newQueries().DaySlots(ctx, "2026-09-15", []string{"2"}, 0)

		s.NoError(err)
		s.NotContains(view.Slots, "10:00")
		s.NotContains(view.Slots, "10:14")
		s.Contains(view.Slots, "10:15")
	})

	s.Run("error: malformed date", func() {
		_, err := s.newQueries().DaySlots(ctx, "15/09/2026", nil, 0)

		s.Error(err)
		s.True(errs.Is(err, queries.ErrInvalidDate))
	})
}
