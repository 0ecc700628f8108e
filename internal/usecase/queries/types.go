package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AppointmentView struct {
	ID              uuid.UUID  `json:"id"`
	PetID           *uuid.UUID `json:"pet_id,omitempty"`
	TutorName       string     `json:"tutor_name"`
	PetName         string     `json:"pet_name"`
	Species         string     `json:"species"`
	Date            string     `json:"date"`
	Start           string     `json:"start"`
	DurationMinutes int        `json:"duration_minutes"`
	ServiceIDs      []int64    `json:"service_ids"`
	Address         AddressView `json:"address"`
	Payment         string     `json:"payment"`
	PriceCents      int64      `json:"price_cents"`
	Status          string     `json:"status"`
	CancelReason    *string    `json:"cancel_reason,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AddressView struct {
	CEP        string `json:"cep"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Complement string `json:"complement,omitempty"`
}

type AppointmentListItem struct {
	ID              uuid.UUID `json:"id"`
	PetName         string    `json:"pet_name"`
	TutorName       string    `json:"tutor_name"`
	Date            string    `json:"date"`
	Start           string    `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ServiceView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	PriceCents      int64     `json:"price_cents"`
	DurationMinutes int       `json:"duration_minutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PetView struct {
	ID        uuid.UUID `json:"id"`
	TutorName string    `json:"tutor_name"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed,omitempty"`
	AgeYears  *int      `json:"age_years,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DaySlotsView answers "when can you fit my pet in on this day".
type DaySlotsView struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Slots           []string `json:"slots"`
}
