package request

import (
	"groomly/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PetID      *uuid.UUID `json:"pet_id,omitempty"`
	TutorName  string     `json:"tutor_name" binding:"required"`
	PetName    string     `json:"pet_name" binding:"required"`
	Species    string     `json:"species" binding:"required"`
	Date       string     `json:"date" binding:"required"`
	Start      string     `json:"start" binding:"required"`
	ServiceIDs []string   `json:"service_ids" binding:"required"`
	CEP        string     `json:"cep" binding:"required"`
	Street     string     `json:"street" binding:"required"`
	Number     string     `json:"number" binding:"required"`
	District   string     `json:"district" binding:"required"`
	City       string     `json:"city" binding:"required"`
	State      string     `json:"state" binding:"required"`
	Complement string     `json:"complement,omitempty"`
	Payment    string     `json:"payment" binding:"required"`
	Notes      string     `json:"notes,omitempty"`
}

func (r CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		PetID:      r.PetID,
		TutorName:  r.TutorName,
		PetName:    r.PetName,
		Species:    r.Species,
		Date:       r.Date,
		Start:      r.Start,
		ServiceIDs: r.ServiceIDs,
		CEP:        r.CEP,
		Street:     r.Street,
		Number:     r.Number,
		District:   r.District,
		City:       r.City,
		State:      r.State,
		Complement: r.Complement,
		Payment:    r.Payment,
		Notes:      r.Notes,
	}
}

type RescheduleAppointmentRequest struct {
	Date       string   `json:"date" binding:"required"`
	Start      string   `json:"start" binding:"required"`
	ServiceIDs []string `json:"service_ids" binding:"required"`
}

func (r RescheduleAppointmentRequest) ToCommand() commands.RescheduleAppointmentRequest {
	return commands.RescheduleAppointmentRequest{
		Date:       r.Date,
		Start:      r.Start,
		ServiceIDs: r.ServiceIDs,
	}
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}
