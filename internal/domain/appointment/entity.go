package appointment

import (
	"strings"
	"time"

	"groomly/internal/domain/pet"
	"groomly/internal/domain/schedule"
	"groomly/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTutorName     = errs.New("tutor name is required")
	ErrEmptyPetName       = errs.New("pet name is required")
	ErrNoServices         = errs.New("at least one service must be selected")
	ErrOutsideOpenHours   = errs.New("appointment must fit inside open hours")
	ErrEmptyCancelReason  = errs.New("cancellation reason is required")
	ErrNotReschedulable   = errs.New("only scheduled or confirmed appointments can be rescheduled")
	ErrInvalidTransition  = errs.New("invalid status transition")
	ErrNegativeTotalPrice = errs.New("total price cannot be negative")
)

// Appointment is the booking aggregate. Duration and price are derived once,
// when the booking is created or rescheduled, from the services selected at
// that moment; later catalogue edits do not rewrite history.
type Appointment struct {
	id              uuid.UUID
	petID           *uuid.UUID
	tutorName       string
	petName         string
	species         pet.Species
	date            time.Time
	startMinute     int
	durationMinutes int
	serviceIDs      []int64
	address         Address
	payment         PaymentMethod
	priceCents      int64
	status          Status
	cancelReason    string
	notes           string
	createdAt       time.Time
	updatedAt       time.Time
}

type NewAppointmentParams struct {
	PetID           *uuid.UUID
	TutorName       string
	PetName         string
	Species         pet.Species
	Date            time.Time
	StartMinute     int
	DurationMinutes int
	ServiceIDs      []int64
	Address         Address
	Payment         PaymentMethod
	PriceCents      int64
	Notes           string
}

func NewAppointment(p NewAppointmentParams) (*Appointment, error) {
	tutorName := strings.TrimSpace(p.TutorName)
	if tutorName == "" {
		return nil, ErrEmptyTutorName
	}
	petName := strings.TrimSpace(p.PetName)
	if petName == "" {
		return nil, ErrEmptyPetName
	}
	if _, err := pet.ParseSpecies(string(p.Species)); err != nil {
		return nil, err
	}
	if len(p.ServiceIDs) == 0 {
		return nil, ErrNoServices
	}
	if err := validateWindow(p.StartMinute, p.DurationMinutes); err != nil {
		return nil, err
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativeTotalPrice
	}

	return &Appointment{
		id:              uuid.New(),
		petID:           p.PetID,
		tutorName:       tutorName,
		petName:         petName,
		species:         p.Species,
		date:            p.Date,
		startMinute:     p.StartMinute,
		durationMinutes: p.DurationMinutes,
		serviceIDs:      p.ServiceIDs,
		address:         p.Address,
		payment:         p.Payment,
		priceCents:      p.PriceCents,
		status:          StatusScheduled,
		notes:           strings.TrimSpace(p.Notes),
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	petID *uuid.UUID,
	tutorName, petName string,
	species pet.Species,
	date time.Time,
	startMinute, durationMinutes int,
	serviceIDs []int64,
	address Address,
	payment PaymentMethod,
	priceCents int64,
	status Status,
	cancelReason, notes string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:              id,
		petID:           petID,
		tutorName:       tutorName,
		petName:         petName,
		species:         species,
		date:            date,
		startMinute:     startMinute,
		durationMinutes: durationMinutes,
		serviceIDs:      serviceIDs,
		address:         address,
		payment:         payment,
		priceCents:      priceCents,
		status:          status,
		cancelReason:    cancelReason,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// validateWindow keeps the whole interval inside open hours and out of the
// midday closure.
func validateWindow(startMinute, durationMinutes int) error {
	if durationMinutes <= 0 {
		return schedule.ErrInvalidDuration
	}
	if startMinute < schedule.OpenMinute || startMinute >= schedule.CloseMinute {
		return ErrOutsideOpenHours
	}
	if startMinute >= schedule.ClosureStart && startMinute < schedule.ClosureEnd {
		return ErrOutsideOpenHours
	}
	return nil
}

// Confirm moves a scheduled appointment to confirmed.
func (a *Appointment) Confirm() error {
	if a.status != StatusScheduled {
		return ErrInvalidTransition
	}
	a.status = StatusConfirmed
	return nil
}

// Complete marks a confirmed appointment as done, releasing its slot.
func (a *Appointment) Complete() error {
	if a.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	a.status = StatusCompleted
	return nil
}

// Cancel releases the slot. A reason is required; completed and cancelled
// appointments cannot be cancelled (again).
func (a *Appointment) Cancel(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyCancelReason
	}
	if !a.status.HoldsSlot() {
		return ErrInvalidTransition
	}
	a.status = StatusCancelled
	a.cancelReason = reason
	return nil
}

// Reschedule replaces the slot and service selection in place. The caller is
// responsible for running the availability check (excluding this
// appointment) before persisting.
func (a *Appointment) Reschedule(date time.Time, startMinute, durationMinutes int, serviceIDs []int64, priceCents int64) error {
	if !a.status.HoldsSlot() {
		return ErrNotReschedulable
	}
	if len(serviceIDs) == 0 {
		return ErrNoServices
	}
	if err := validateWindow(startMinute, durationMinutes); err != nil {
		return err
	}
	if priceCents < 0 {
		return ErrNegativeTotalPrice
	}

	a.date = date
	a.startMinute = startMinute
	a.durationMinutes = durationMinutes
	a.serviceIDs = serviceIDs
	a.priceCents = priceCents
	return nil
}

// IsActive reports whether the appointment still holds its slot.
func (a *Appointment) IsActive() bool { return a.status.HoldsSlot() }

// Interval returns the half-open [start, end) window in minutes of day.
func (a *Appointment) Interval() (startMinute, endMinute int) {
	return a.startMinute, a.startMinute + a.durationMinutes
}

func (a *Appointment) ID() uuid.UUID          { return a.id }
func (a *Appointment) PetID() *uuid.UUID      { return a.petID }
func (a *Appointment) TutorName() string      { return a.tutorName }
func (a *Appointment) PetName() string        { return a.petName }
func (a *Appointment) Species() pet.Species   { return a.species }
func (a *Appointment) Date() time.Time        { return a.date }
func (a *Appointment) StartMinute() int       { return a.startMinute }
func (a *Appointment) DurationMinutes() int   { return a.durationMinutes }
func (a *Appointment) ServiceIDs() []int64    { return a.serviceIDs }
func (a *Appointment) Address() Address       { return a.address }
func (a *Appointment) Payment() PaymentMethod { return a.payment }
func (a *Appointment) PriceCents() int64      { return a.priceCents }
func (a *Appointment) Status() Status         { return a.status }
func (a *Appointment) CancelReason() string   { return a.cancelReason }
func (a *Appointment) Notes() string          { return a.notes }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time   { return a.updatedAt }
