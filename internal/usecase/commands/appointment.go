package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"groomly/internal/domain/appointment"
	"groomly/internal/domain/pet"
	"groomly/internal/domain/schedule"
	"groomly/internal/infra"
	"groomly/internal/pkg/clock"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/queries"
	"groomly/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrInvalidDate             = errs.New("invalid date")
	ErrInvalidStartTime        = errs.New("invalid start time")
	ErrSlotTaken               = errs.New("slot already taken")
	ErrBookingInPast           = errs.New("booking is in the past")
	ErrDuplicateBooking        = errs.New("duplicate booking request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const idempotencyTTL = 24 * time.Hour

type CreateAppointmentRequest struct {
	PetID      *uuid.UUID
	TutorName  string
	PetName    string
	Species    string
	Date       string
	Start      string
	ServiceIDs []string
	CEP        string
	Street     string
	Number     string
	District   string
	City       string
	State      string
	Complement string
	Payment    string
	Notes      string
}

type RescheduleAppointmentRequest struct {
	Date       string
	Start      string
	ServiceIDs []string
}

type CreateAppointmentResult struct {
	Appointment *queries.AppointmentView
	IsReplayed  bool
}

type AppointmentCommands interface {
	Create(ctx context.Context, req CreateAppointmentRequest, idempotencyKey uuid.UUID) (*CreateAppointmentResult, error)
	Reschedule(ctx context.Context, id uuid.UUID, req RescheduleAppointmentRequest) (*queries.AppointmentView, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
}

type appointmentUseCaseImpl struct {
	uow         shared.UnitOfWork
	apptQueries queries.AppointmentQueries
	clock       clock.Clock
	loc         *time.Location
	stepMinutes int
}

func NewAppointmentUseCase(
	uow shared.UnitOfWork,
	apptQueries queries.AppointmentQueries,
	clk clock.Clock,
	loc *time.Location,
	stepMinutes int,
) AppointmentCommands {
	if stepMinutes <= 0 {
		stepMinutes = schedule.DefaultStep
	}
	return &appointmentUseCaseImpl{
		uow:         uow,
		apptQueries: apptQueries,
		clock:       clk,
		loc:         loc,
		stepMinutes: stepMinutes,
	}
}

func (uc *appointmentUseCaseImpl) Create(
	ctx context.Context,
	req CreateAppointmentRequest,
	idempotencyKey uuid.UUID,
) (*CreateAppointmentResult, error) {
	requestHash := calculateRequestHash(req)
	expiresAt := uc.clock.Now().Add(idempotencyTTL)

	replayed, err := uc.handleIdempotency(ctx, idempotencyKey, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateAppointmentResult{Appointment: replayed, IsReplayed: true}, nil
	}

	view, err := uc.createNewAppointment(ctx, req, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateAppointmentResult{Appointment: view, IsReplayed: false}, nil
}

func (uc *appointmentUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.AppointmentView, error) {
	var claimed bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, terr := tx.Idempotency().TryInsert(ctx, idempotencyKey, "POST /appointments", requestHash, expiresAt)
		claimed = ok
		return terr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		// The key is ours, either brand new or reclaimed after expiry.
		return nil, nil
	}

	existing, err := uc.uow.CommandReads().IdempotencyByKey(ctx, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, ErrDuplicateBooking
	}

	switch existing.Status {
	case "completed":
		if existing.ResultAppointmentID == nil {
			return nil, errs.New("completed request missing result appointment ID")
		}
		return uc.apptQueries.GetByID(ctx, *existing.ResultAppointmentID)

	case "processing":
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *appointmentUseCaseImpl) createNewAppointment(
	ctx context.Context,
	req CreateAppointmentRequest,
	idempotencyKey uuid.UUID,
) (*queries.AppointmentView, error) {
	date, err := parseDate(req.Date, uc.loc)
	if err != nil {
		return nil, err
	}
	startMinute, err := schedule.ParseMinuteOfDay(req.Start)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStartTime)
	}
	if !schedule.OnGrid(startMinute, uc.stepMinutes) {
		return nil, schedule.ErrOffGridStart
	}
	if err := uc.checkNotInPast(date, startMinute); err != nil {
		return nil, err
	}
	serviceIDs := schedule.ParseServiceIDs(req.ServiceIDs)

	address, err := appointment.NewAddress(req.CEP, req.Street, req.Number, req.District, req.City, req.State, req.Complement)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	payment, err := appointment.ParsePaymentMethod(req.Payment)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	// The availability check and the insert share one serializable transaction
	// so two concurrent bookings cannot both see the slot as free.
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		durationMinutes, derr := schedule.ResolveDuration(ctx, tx.Reads(), req.ServiceIDs)
		if derr != nil {
			return derr
		}
		priceCents, derr := tx.Reads().TotalPriceCents(ctx, serviceIDs)
		if derr != nil {
			return derr
		}

		checker := schedule.NewChecker(tx.Reads())
		free, derr := checker.IsFree(ctx, date, req.Start, durationMinutes, nil)
		if derr != nil {
			return derr
		}
		if !free {
			return ErrSlotTaken
		}

		appt, derr := appointment.NewAppointment(appointment.NewAppointmentParams{
			PetID:           req.PetID,
			TutorName:       req.TutorName,
			PetName:         req.PetName,
			Species:         pet.Species(req.Species),
			Date:            date,
			StartMinute:     startMinute,
			DurationMinutes: durationMinutes,
			ServiceIDs:      serviceIDs,
			Address:         address,
			Payment:         payment,
			PriceCents:      priceCents,
			Notes:           req.Notes,
		})
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, derr := tx.Appointments().Create(ctx, appt)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrSlotTaken
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id

		if derr := uc.createNotificationJob(ctx, tx, id, "appointment_created"); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return tx.Idempotency().UpdateStatusCompleted(ctx, idempotencyKey, id)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the complete view from the read store.
	view, err := uc.apptQueries.GetByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *appointmentUseCaseImpl) Reschedule(
	ctx context.Context,
	id uuid.UUID,
	req RescheduleAppointmentRequest,
) (*queries.AppointmentView, error) {
	date, err := parseDate(req.Date, uc.loc)
	if err != nil {
		return nil, err
	}
	startMinute, err := schedule.ParseMinuteOfDay(req.Start)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStartTime)
	}
	if !schedule.OnGrid(startMinute, uc.stepMinutes) {
		return nil, schedule.ErrOffGridStart
	}
	if err := uc.checkNotInPast(date, startMinute); err != nil {
		return nil, err
	}
	serviceIDs := schedule.ParseServiceIDs(req.ServiceIDs)

	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().AppointmentByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		durationMinutes, derr := schedule.ResolveDuration(ctx, tx.Reads(), req.ServiceIDs)
		if derr != nil {
			return derr
		}
		priceCents, derr := tx.Reads().TotalPriceCents(ctx, serviceIDs)
		if derr != nil {
			return derr
		}

		// The appointment being moved must not collide with itself.
		checker := schedule.NewChecker(tx.Reads())
		free, derr := checker.IsFree(ctx, date, req.Start, durationMinutes, &id)
		if derr != nil {
			return derr
		}
		if !free {
			return ErrSlotTaken
		}

		appt := rebuildAppointment(snap)
		if derr := appt.Reschedule(date, startMinute, durationMinutes, serviceIDs, priceCents); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		if derr := tx.Appointments().Update(ctx, appt); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrSlotTaken
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return uc.createNotificationJob(ctx, tx, id, "appointment_rescheduled")
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.apptQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *appointmentUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, "appointment_confirmed", func(appt *appointment.Appointment) error {
		return appt.Confirm()
	})
}

func (uc *appointmentUseCaseImpl) Complete(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, "appointment_completed", func(appt *appointment.Appointment) error {
		return appt.Complete()
	})
}

func (uc *appointmentUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	return uc.transition(ctx, id, "appointment_cancelled", func(appt *appointment.Appointment) error {
		return appt.Cancel(reason)
	})
}

func (uc *appointmentUseCaseImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	topic string,
	mutate func(*appointment.Appointment) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().AppointmentByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		appt := rebuildAppointment(snap)
		if derr := mutate(appt); derr != nil {
			return derr
		}
		if derr := tx.Appointments().Update(ctx, appt); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return uc.createNotificationJob(ctx, tx, id, topic)
	})
}

// checkNotInPast rejects bookings whose start is before now plus the lead
// time, in the shop's timezone. Dates before today are rejected outright.
func (uc *appointmentUseCaseImpl) checkNotInPast(date time.Time, startMinute int) error {
	now := uc.clock.Now().In(uc.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)

	if day.Before(today) {
		return ErrBookingInPast
	}
	if day.Equal(today) {
		cutoff := now.Add(schedule.BookingLeadTime)
		cutoffMinute := cutoff.Hour()*60 + cutoff.Minute()
		if startMinute < cutoffMinute {
			return ErrBookingInPast
		}
	}
	return nil
}

func (uc *appointmentUseCaseImpl) createNotificationJob(
	ctx context.Context,
	tx shared.Tx,
	appointmentID uuid.UUID,
	topic string,
) error {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appointmentID,
		"type":           topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, "email", topic, payload, uc.clock.Now())
}

func rebuildAppointment(snap *shared.AppointmentSnapshot) *appointment.Appointment {
	return appointment.Reconstruct(
		snap.ID,
		snap.PetID,
		snap.TutorName,
		snap.PetName,
		pet.Species(snap.Species),
		snap.Date,
		snap.StartMinute,
		snap.DurationMinutes,
		snap.ServiceIDs,
		appointment.ReconstructAddress(snap.CEP, snap.Street, snap.Number, snap.District, snap.City, snap.State, snap.Complement),
		appointment.PaymentMethod(snap.Payment),
		snap.PriceCents,
		appointment.Status(snap.Status),
		snap.CancelReason,
		snap.Notes,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return date, nil
}

func calculateRequestHash(req CreateAppointmentRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
