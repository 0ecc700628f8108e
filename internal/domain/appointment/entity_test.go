//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"groomly/internal/domain/appointment"
	"groomly/internal/domain/pet"
	"groomly/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() appointment.NewAppointmentParams {
	addr, _ := appointment.NewAddress("93200-000", "Rua das Flores", "123", "Centro", "Sapucaia do Sul", "rs", "")
	return appointment.NewAppointmentParams{
		TutorName:       "Maria Souza",
		PetName:         "Buddy",
		Species:         pet.SpeciesDog,
		Date:            time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC),
		StartMinute:     10 * 60,
		DurationMinutes: 60,
		ServiceIDs:      []int64{1, 2},
		Address:         addr,
		Payment:         appointment.PaymentPix,
		PriceCents:      17000,
		Notes:           "",
	}
}

func TestNewAppointment(t *testing.T) {
	t.Run("valid booking", func(t *testing.T) {
		appt, err := appointment.NewAppointment(validParams())
		require.NoError(t, err)

		assert.Equal(t, appointment.StatusScheduled, appt.Status())
		assert.True(t, appt.IsActive())
		start, end := appt.Interval()
		assert.Equal(t, 600, start)
		assert.Equal(t, 660, end)
	})

	tests := []struct {
		name   string
		mutate func(*appointment.NewAppointmentParams)
		errIs  error
	}{
		{
			name:   "missing tutor name",
			mutate: func(p *appointment.NewAppointmentParams) { p.TutorName = "  " },
			errIs:  appointment.ErrEmptyTutorName,
		},
		{
			name:   "missing pet name",
			mutate: func(p *appointment.NewAppointmentParams) { p.PetName = "" },
			errIs:  appointment.ErrEmptyPetName,
		},
		{
			name:   "unknown species",
			mutate: func(p *appointment.NewAppointmentParams) { p.Species = "dragon" },
			errIs:  pet.ErrInvalidSpecies,
		},
		{
			name:   "no services selected",
			mutate: func(p *appointment.NewAppointmentParams) { p.ServiceIDs = nil },
			errIs:  appointment.ErrNoServices,
		},
		{
			name:   "before opening",
			mutate: func(p *appointment.NewAppointmentParams) { p.StartMinute = 7 * 60 },
			errIs:  appointment.ErrOutsideOpenHours,
		},
		{
			name:   "at closing time",
			mutate: func(p *appointment.NewAppointmentParams) { p.StartMinute = 18 * 60 },
			errIs:  appointment.ErrOutsideOpenHours,
		},
		{
			name:   "inside the midday closure",
			mutate: func(p *appointment.NewAppointmentParams) { p.StartMinute = 12*60 + 30 },
			errIs:  appointment.ErrOutsideOpenHours,
		},
		{
			name:   "zero duration",
			mutate: func(p *appointment.NewAppointmentParams) { p.DurationMinutes = 0 },
			errIs:  schedule.ErrInvalidDuration,
		},
		{
			name:   "negative price",
			mutate: func(p *appointment.NewAppointmentParams) { p.PriceCents = -1 },
			errIs:  appointment.ErrNegativeTotalPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := appointment.NewAppointment(p)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	newAppt := func(t *testing.T) *appointment.Appointment {
		t.Helper()
		appt, err := appointment.NewAppointment(validParams())
		require.NoError(t, err)
		return appt
	}

	t.Run("scheduled to confirmed to completed", func(t *testing.T) {
		appt := newAppt(t)
		require.NoError(t, appt.Confirm())
		assert.Equal(t, appointment.StatusConfirmed, appt.Status())
		require.NoError(t, appt.Complete())
		assert.Equal(t, appointment.StatusCompleted, appt.Status())
		assert.False(t, appt.IsActive())
	})

	t.Run("cannot complete while scheduled", func(t *testing.T) {
		appt := newAppt(t)
		assert.ErrorIs(t, appt.Complete(), appointment.ErrInvalidTransition)
	})

	t.Run("cancel from scheduled and confirmed", func(t *testing.T) {
		appt := newAppt(t)
		require.NoError(t, appt.Cancel("tutor asked to"))
		assert.Equal(t, appointment.StatusCancelled, appt.Status())
		assert.Equal(t, "tutor asked to", appt.CancelReason())
		assert.False(t, appt.IsActive())

		appt = newAppt(t)
		require.NoError(t, appt.Confirm())
		require.NoError(t, appt.Cancel("groomer unavailable"))
		assert.Equal(t, appointment.StatusCancelled, appt.Status())
	})

	t.Run("cancel requires a reason", func(t *testing.T) {
		appt := newAppt(t)
		assert.ErrorIs(t, appt.Cancel("   "), appointment.ErrEmptyCancelReason)
	})

	t.Run("terminal states reject transitions", func(t *testing.T) {
		appt := newAppt(t)
		require.NoError(t, appt.Cancel("no show"))
		assert.ErrorIs(t, appt.Confirm(), appointment.ErrInvalidTransition)
		assert.ErrorIs(t, appt.Cancel("again"), appointment.ErrInvalidTransition)

		appt = newAppt(t)
		require.NoError(t, appt.Confirm())
		require.NoError(t, appt.Complete())
		assert.ErrorIs(t, appt.Cancel("too late"), appointment.ErrInvalidTransition)
	})
}

func TestReschedule(t *testing.T) {
	appt, err := appointment.NewAppointment(validParams())
	require.NoError(t, err)

	newDate := time.Date(2025, time.October, 12, 0, 0, 0, 0, time.UTC)

	t.Run("moves the slot and rederives totals", func(t *testing.T) {
		require.NoError(t, appt.Reschedule(newDate, 14*60, 90, []int64{2}, 12000))
		assert.Equal(t, newDate, appt.Date())
		assert.Equal(t, 14*60, appt.StartMinute())
		assert.Equal(t, 90, appt.DurationMinutes())
		assert.Equal(t, []int64{2}, appt.ServiceIDs())
		assert.Equal(t, int64(12000), appt.PriceCents())
	})

	t.Run("rejects windows outside open hours", func(t *testing.T) {
		err := appt.Reschedule(newDate, 13*60, 30, []int64{2}, 12000)
		assert.ErrorIs(t, err, appointment.ErrOutsideOpenHours)
	})

	t.Run("cancelled appointments stay put", func(t *testing.T) {
		require.NoError(t, appt.Cancel("changed plans"))
		err := appt.Reschedule(newDate, 15*60, 30, []int64{2}, 12000)
		assert.ErrorIs(t, err, appointment.ErrNotReschedulable)
	})
}

func TestAddress(t *testing.T) {
	t.Run("normalizes cep and state", func(t *testing.T) {
		addr, err := appointment.NewAddress("93.200-000", "Rua A", "1", "Centro", "Porto Alegre", "rs", "apt 2")
		require.NoError(t, err)
		assert.Equal(t, "93200-000", addr.CEP())
		assert.Equal(t, "RS", addr.State())
	})

	t.Run("rejects short cep", func(t *testing.T) {
		_, err := appointment.NewAddress("1234", "Rua A", "1", "Centro", "Porto Alegre", "RS", "")
		assert.ErrorIs(t, err, appointment.ErrInvalidCEP)
	})

	t.Run("rejects bad state", func(t *testing.T) {
		_, err := appointment.NewAddress("93200000", "Rua A", "1", "Centro", "Porto Alegre", "RSX", "")
		assert.ErrorIs(t, err, appointment.ErrInvalidState)
	})
}

func TestParsePaymentMethod(t *testing.T) {
	for _, ok := range []string{"cash", "pix", "credit_card", "debit_card", "bank_transfer"} {
		_, err := appointment.ParsePaymentMethod(ok)
		assert.NoError(t, err, ok)
	}
	_, err := appointment.ParsePaymentMethod("crypto")
	assert.ErrorIs(t, err, appointment.ErrInvalidPaymentMethod)
}
