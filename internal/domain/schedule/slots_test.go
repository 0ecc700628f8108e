//go:build unit

package schedule_test

import (
	"testing"

	"groomly/internal/domain/schedule"
	"groomly/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	t.Run("thirty minute grid", func(t *testing.T) {
		got, err := schedule.Slots(30)
		require.NoError(t, err)

		want := []string{
			"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
			"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slot grid mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("bounds", func(t *testing.T) {
		got, err := schedule.Slots(30)
		require.NoError(t, err)
		assert.Equal(t, "08:00", got[0])
		assert.Equal(t, "17:30", got[len(got)-1])
	})

	t.Run("midday closure is skipped", func(t *testing.T) {
		got, err := schedule.Slots(30)
		require.NoError(t, err)

		assert.Contains(t, got, "11:30")
		assert.NotContains(t, got, "12:00")
		assert.NotContains(t, got, "12:30")
		assert.NotContains(t, got, "13:00")
		assert.NotContains(t, got, "13:30")
		assert.Contains(t, got, "14:00")
	})

	t.Run("default fifteen minute grid", func(t *testing.T) {
		got, err := schedule.Slots(schedule.DefaultStep)
		require.NoError(t, err)

		// 10h day minus 2h closure at 15-minute steps
		assert.Len(t, got, 32)
		assert.Equal(t, "11:45", got[15])
		assert.Equal(t, "14:00", got[16])
	})

	t.Run("strictly increasing", func(t *testing.T) {
		got, err := schedule.SlotMinutes(45)
		require.NoError(t, err)
		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i], got[i-1])
		}
	})

	t.Run("non-positive step is rejected", func(t *testing.T) {
		_, err := schedule.Slots(0)
		assert.ErrorIs(t, err, schedule.ErrInvalidStep)

		_, err = schedule.Slots(-15)
		assert.ErrorIs(t, err, schedule.ErrInvalidStep)
	})
}

func TestMinuteOfDayRoundTrip(t *testing.T) {
	minute, err := schedule.ParseMinuteOfDay("17:45")
	require.NoError(t, err)
	assert.Equal(t, 17*60+45, minute)
	assert.Equal(t, "17:45", schedule.FormatMinuteOfDay(minute))

	for _, bad := range []string{"", "25:00", "12:60", "noon", "9:5x"} {
		_, err := schedule.ParseMinuteOfDay(bad)
		assert.True(t, errs.Is(err, schedule.ErrInvalidTime), "input %q", bad)
	}
}

func TestOnGrid(t *testing.T) {
	tests := []struct {
		name   string
		minute int
		step   int
		want   bool
	}{
		{name: "opening slot", minute: 8 * 60, step: 15, want: true},
		{name: "aligned mid-morning", minute: 10*60 + 30, step: 15, want: true},
		{name: "off by seven minutes", minute: 8*60 + 7, step: 15, want: false},
		{name: "aligned to 15 but not to 30", minute: 8*60 + 15, step: 30, want: false},
		{name: "before opening", minute: 7 * 60, step: 15, want: false},
		{name: "at closing", minute: 18 * 60, step: 15, want: false},
		{name: "inside the midday closure", minute: 12*60 + 30, step: 15, want: false},
		{name: "closure end is bookable again", minute: 14 * 60, step: 15, want: true},
		{name: "non-positive step falls back to the default", minute: 8*60 + 15, step: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.OnGrid(tt.minute, tt.step))
		})
	}
}
