package repository

import (
	"context"

	"groomly/internal/domain/appointment"
	"groomly/internal/infra"
	"groomly/internal/infra/db"

	"github.com/google/uuid"
)

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(dbtx db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: dbtx}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) (uuid.UUID, error) {
	const query = `
		INSERT INTO appointments (
			id, pet_id, tutor_name, pet_name, species, date,
			start_minutes, duration_minutes, service_ids,
			cep, street, number, district, city, state, complement,
			payment, price_cents, status, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`

	addr := appt.Address()
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		appt.ID(),
		appt.PetID(),
		appt.TutorName(),
		appt.PetName(),
		string(appt.Species()),
		appt.Date(),
		appt.StartMinute(),
		appt.DurationMinutes(),
		appt.ServiceIDs(),
		addr.CEP(),
		addr.Street(),
		addr.Number(),
		addr.District(),
		addr.City(),
		addr.State(),
		addr.Complement(),
		string(appt.Payment()),
		appt.PriceCents(),
		string(appt.Status()),
		appt.Notes(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appt *appointment.Appointment) error {
	const query = `
		UPDATE appointments
		SET date = $2,
		    start_minutes = $3,
		    duration_minutes = $4,
		    service_ids = $5,
		    price_cents = $6,
		    status = $7,
		    cancel_reason = $8,
		    updated_at = now()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		appt.ID(),
		appt.Date(),
		appt.StartMinute(),
		appt.DurationMinutes(),
		appt.ServiceIDs(),
		appt.PriceCents(),
		string(appt.Status()),
		appt.CancelReason(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return nil
}
