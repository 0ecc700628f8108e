package response

import (
	"time"

	"groomly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	PetID           *uuid.UUID      `json:"petId,omitempty"`
	TutorName       string          `json:"tutorName"`
	PetName         string          `json:"petName"`
	Species         string          `json:"species"`
	Date            string          `json:"date"`
	Start           string          `json:"start"`
	DurationMinutes int             `json:"durationMinutes"`
	ServiceIDs      []int64         `json:"serviceIds"`
	Address         AddressResponse `json:"address"`
	Payment         string          `json:"payment"`
	PriceCents      int64           `json:"priceCents"`
	Status          string          `json:"status"`
	CancelReason    *string         `json:"cancelReason,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type AddressResponse struct {
	CEP        string `json:"cep"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Complement string `json:"complement,omitempty"`
}

type AppointmentListResponse struct {
	ID              uuid.UUID `json:"id"`
	PetName         string    `json:"petName"`
	TutorName       string    `json:"tutorName"`
	Date            string    `json:"date"`
	Start           string    `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceCents      int64     `json:"priceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromAppointmentView(rm *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAppointmentListItem(rm *queries.AppointmentListItem) *AppointmentListResponse {
	var resp AppointmentListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
