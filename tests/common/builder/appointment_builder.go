//go:build unit || e2e

package builder

import (
	"time"

	reqdto "groomly/internal/handler/dto/request"
	"groomly/internal/usecase/queries"
	"groomly/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID              uuid.UUID
	PetID           *uuid.UUID
	TutorName       string
	PetName         string
	Species         string
	Date            string
	Start           string
	DurationMinutes int
	ServiceIDs      []int64
	RawServiceIDs   []string
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
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Now()
	return &AppointmentBuilder{
		ID:              uuid.New(),
		PetID:           nil,
		TutorName:       "Maria Silva",
		PetName:         "Thor",
		Species:         "dog",
		Date:            "2026-09-15",
		Start:           "10:00",
		DurationMinutes: 45,
		ServiceIDs:      []int64{1},
		RawServiceIDs:   []string{"1"},
		CEP:             "01310-100",
		Street:          "Avenida Paulista",
		Number:          "1578",
		District:        "Bela Vista",
		City:            "Sao Paulo",
		State:           "SP",
		Payment:         "pix",
		PriceCents:      6000,
		Status:          "scheduled",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		PetID:      b.PetID,
		TutorName:  b.TutorName,
		PetName:    b.PetName,
		Species:    b.Species,
		Date:       b.Date,
		Start:      b.Start,
		ServiceIDs: b.RawServiceIDs,
		CEP:        b.CEP,
		Street:     b.Street,
		Number:     b.Number,
		District:   b.District,
		City:       b.City,
		State:      b.State,
		Complement: b.Complement,
		Payment:    b.Payment,
		Notes:      b.Notes,
	}
}

func (b *AppointmentBuilder) BuildRescheduleRequestDTO() reqdto.RescheduleAppointmentRequest {
	return reqdto.RescheduleAppointmentRequest{
		Date:       b.Date,
		Start:      b.Start,
		ServiceIDs: b.RawServiceIDs,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	var notes *string
	if b.Notes != "" {
		n := b.Notes
		notes = &n
	}
	return &queries.AppointmentView{
		ID:              b.ID,
		PetID:           b.PetID,
		TutorName:       b.TutorName,
		PetName:         b.PetName,
		Species:         b.Species,
		Date:            b.Date,
		Start:           b.Start,
		DurationMinutes: b.DurationMinutes,
		ServiceIDs:      b.ServiceIDs,
		Address: queries.AddressView{
			CEP:        b.CEP,
			Street:     b.Street,
			Number:     b.Number,
			District:   b.District,
			City:       b.City,
			State:      b.State,
			Complement: b.Complement,
		},
		Payment:    b.Payment,
		PriceCents: b.PriceCents,
		Status:     b.Status,
		Notes:      notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:              b.ID,
		PetName:         b.PetName,
		TutorName:       b.TutorName,
		Date:            b.Date,
		Start:           b.Start,
		DurationMinutes: b.DurationMinutes,
		PriceCents:      b.PriceCents,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	date, _ := time.Parse("2006-01-02", b.Date)
	return &shared.AppointmentSnapshot{
		ID:              b.ID,
		PetID:           b.PetID,
		TutorName:       b.TutorName,
		PetName:         b.PetName,
		Species:         b.Species,
		Date:            date,
		StartMinute:     600,
		DurationMinutes: b.DurationMinutes,
		ServiceIDs:      b.ServiceIDs,
		CEP:             b.CEP,
		Street:          b.Street,
		Number:          b.Number,
		District:        b.District,
		City:            b.City,
		State:           b.State,
		Complement:      b.Complement,
		Payment:         b.Payment,
		PriceCents:      b.PriceCents,
		Status:          b.Status,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithID(id uuid.UUID) *AppointmentBuilder {
	b.ID = id
	return b
}

func (b *AppointmentBuilder) WithPetID(petID uuid.UUID) *AppointmentBuilder {
	b.PetID = &petID
	return b
}

func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithStart(start string) *AppointmentBuilder {
	b.Start = start
	return b
}

func (b *AppointmentBuilder) WithServiceIDs(raw []string, resolved []int64) *AppointmentBuilder {
	b.RawServiceIDs = raw
	b.ServiceIDs = resolved
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	b.Notes = notes
	return b
}

func (b *AppointmentBuilder) AsConfirmed() *AppointmentBuilder {
	b.Status = "confirmed"
	return b
}

func (b *AppointmentBuilder) AsCancelled() *AppointmentBuilder {
	b.Status = "cancelled"
	return b
}
