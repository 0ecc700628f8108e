package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads. Queries have their own richer
// view types; these carry only what a write path needs to rebuild an
// aggregate or decide a guard.

type AppointmentSnapshot struct {
	ID              uuid.UUID
	PetID           *uuid.UUID
	TutorName       string
	PetName         string
	Species         string
	Date            time.Time
	StartMinute     int
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

type ServiceSnapshot struct {
	ID              int64
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PetSnapshot struct {
	ID        uuid.UUID
	TutorName string
	Name      string
	Species   string
	Breed     string
	AgeYears  *int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultAppointmentID *uuid.UUID
	ExpiresAt           time.Time
}
