package readstore

import (
	"context"
	"time"

	"groomly/internal/domain/schedule"
	"groomly/internal/infra"
	"groomly/internal/infra/db"
	"groomly/internal/usecase/queries"
	"groomly/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

const appointmentColumns = `
	id, pet_id, tutor_name, pet_name, species, date,
	start_minutes, duration_minutes, service_ids,
	cep, street, number, district, city, state, complement,
	payment, price_cents, status, cancel_reason, notes,
	created_at, updated_at
`

type appointmentRow struct {
	ID              uuid.UUID
	PetID           *uuid.UUID
	TutorName       string
	PetName         string
	Species         string
	Date            time.Time
	StartMinutes    int
	DurationMinutes int
	ServiceIDs      []int64
	CEP             string
	Street          string
	Number          string
	District        string
	City            string
	State           string
	Complement      string
	Payment         string
	PriceCents      int64
	Status          string
	CancelReason    string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := s.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return rowToView(row), nil
}

// FindSnapshotByID feeds the command side, which rebuilds the aggregate and
// needs raw minutes rather than formatted times.
func (s *AppointmentReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	row, err := s.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.AppointmentSnapshot{
		ID:              row.ID,
		PetID:           row.PetID,
		TutorName:       row.TutorName,
		PetName:         row.PetName,
		Species:         row.Species,
		Date:            row.Date,
		StartMinute:     row.StartMinutes,
		DurationMinutes: row.DurationMinutes,
		ServiceIDs:      row.ServiceIDs,
		CEP:             row.CEP,
		Street:          row.Street,
		Number:          row.Number,
		District:        row.District,
		City:            row.City,
		State:           row.State,
		Complement:      row.Complement,
		Payment:         row.Payment,
		PriceCents:      row.PriceCents,
		Status:          row.Status,
		CancelReason:    row.CancelReason,
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

func (s *AppointmentReadStore) findRow(ctx context.Context, id uuid.UUID) (*appointmentRow, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var row appointmentRow
	err := s.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.PetID, &row.TutorName, &row.PetName, &row.Species, &row.Date,
		&row.StartMinutes, &row.DurationMinutes, &row.ServiceIDs,
		&row.CEP, &row.Street, &row.Number, &row.District, &row.City, &row.State, &row.Complement,
		&row.Payment, &row.PriceCents, &row.Status, &row.CancelReason, &row.Notes,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	return &row, nil
}

func (s *AppointmentReadStore) FindByDate(ctx context.Context, date time.Time) ([]*queries.AppointmentListItem, error) {
	const query = `
		SELECT id, pet_name, tutor_name, date, start_minutes, duration_minutes, price_cents, status, created_at
		FROM appointments
		WHERE date = $1
		ORDER BY start_minutes
	`
	return s.listItems(ctx, query, date)
}

func (s *AppointmentReadStore) FindByPetID(ctx context.Context, petID uuid.UUID) ([]*queries.AppointmentListItem, error) {
	const query = `
		SELECT id, pet_name, tutor_name, date, start_minutes, duration_minutes, price_cents, status, created_at
		FROM appointments
		WHERE pet_id = $1
		ORDER BY date DESC, start_minutes DESC
	`
	return s.listItems(ctx, query, petID)
}

func (s *AppointmentReadStore) listItems(ctx context.Context, query string, arg any) ([]*queries.AppointmentListItem, error) {
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	items := []*queries.AppointmentListItem{}
	for rows.Next() {
		var (
			item         queries.AppointmentListItem
			date         time.Time
			startMinutes int
		)
		err := rows.Scan(
			&item.ID, &item.PetName, &item.TutorName, &date, &startMinutes,
			&item.DurationMinutes, &item.PriceCents, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		item.Date = date.Format("2006-01-02")
		item.Start = schedule.FormatMinuteOfDay(startMinutes)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment rows", err)
	}
	return items, nil
}

// ActiveOnDate returns the busy intervals holding slots on a date, feeding
// the availability checker.
func (s *AppointmentReadStore) ActiveOnDate(ctx context.Context, date time.Time) ([]schedule.BusyInterval, error) {
	const query = `
		SELECT id, start_minutes, duration_minutes
		FROM appointments
		WHERE date = $1 AND status IN ('scheduled', 'confirmed')
	`

	rows, err := s.db.Query(ctx, query, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list busy intervals", err)
	}
	defer rows.Close()

	var busy []schedule.BusyInterval
	for rows.Next() {
		var b schedule.BusyInterval
		if err := rows.Scan(&b.ID, &b.StartMinute, &b.DurationMinutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan busy interval", err)
		}
		busy = append(busy, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read busy intervals", err)
	}
	return busy, nil
}

func rowToView(row *appointmentRow) *queries.AppointmentView {
	view := &queries.AppointmentView{
		ID:              row.ID,
		PetID:           row.PetID,
		TutorName:       row.TutorName,
		PetName:         row.PetName,
		Species:         row.Species,
		Date:            row.Date.Format("2006-01-02"),
		Start:           schedule.FormatMinuteOfDay(row.StartMinutes),
		DurationMinutes: row.DurationMinutes,
		ServiceIDs:      row.ServiceIDs,
		Address: queries.AddressView{
			CEP:        row.CEP,
			Street:     row.Street,
			Number:     row.Number,
			District:   row.District,
			City:       row.City,
			State:      row.State,
			Complement: row.Complement,
		},
		Payment:    row.Payment,
		PriceCents: row.PriceCents,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.CancelReason != "" {
		view.CancelReason = &row.CancelReason
	}
	if row.Notes != "" {
		view.Notes = &row.Notes
	}
	return view
}
