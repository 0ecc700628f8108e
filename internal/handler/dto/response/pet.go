package response

import (
	"time"

	"groomly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	TutorName string    `json:"tutorName"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed,omitempty"`
	AgeYears  *int      `json:"ageYears,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromPetView(rm *queries.PetView) *PetResponse {
	var resp PetResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromPetViews(rms []*queries.PetView) []*PetResponse {
	resp := make([]*PetResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromPetView(rm)
	}
	return resp
}
