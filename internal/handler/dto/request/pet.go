package request

import "groomly/internal/usecase/commands"

type CreatePetRequest struct {
	TutorName string `json:"tutor_name" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Species   string `json:"species" binding:"required"`
	Breed     string `json:"breed,omitempty"`
	AgeYears  *int   `json:"age_years,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (r CreatePetRequest) ToCommand() commands.CreatePetRequest {
	return commands.CreatePetRequest{
		TutorName: r.TutorName,
		Name:      r.Name,
		Species:   r.Species,
		Breed:     r.Breed,
		AgeYears:  r.AgeYears,
		Notes:     r.Notes,
	}
}

type UpdatePetRequest struct {
	TutorName string `json:"tutor_name" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Species   string `json:"species" binding:"required"`
	Breed     string `json:"breed,omitempty"`
	AgeYears  *int   `json:"age_years,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (r UpdatePetRequest) ToCommand() commands.UpdatePetRequest {
	return commands.UpdatePetRequest{
		TutorName: r.TutorName,
		Name:      r.Name,
		Species:   r.Species,
		Breed:     r.Breed,
		AgeYears:  r.AgeYears,
		Notes:     r.Notes,
	}
}
