//go:build unit || e2e

package builder

import (
	"time"

	reqdto "groomly/internal/handler/dto/request"
	"groomly/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetBuilder struct {
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

func NewPetBuilder() *PetBuilder {
	now := time.Now()
	age := 3
	return &PetBuilder{
		ID:        uuid.New(),
		TutorName: "Maria Silva",
		Name:      "Thor",
		Species:   "dog",
		Breed:     "Golden Retriever",
		AgeYears:  &age,
		Notes:     "Afraid of dryers",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *PetBuilder) BuildCreateRequestDTO() reqdto.CreatePetRequest {
	return reqdto.CreatePetRequest{
		TutorName: b.TutorName,
		Name:      b.Name,
		Species:   b.Species,
		Breed:     b.Breed,
		AgeYears:  b.AgeYears,
		Notes:     b.Notes,
	}
}

func (b *PetBuilder) BuildUpdateRequestDTO() reqdto.UpdatePetRequest {
	return reqdto.UpdatePetRequest{
		TutorName: b.TutorName,
		Name:      b.Name,
		Species:   b.Species,
		Breed:     b.Breed,
		AgeYears:  b.AgeYears,
		Notes:     b.Notes,
	}
}

func (b *PetBuilder) BuildView() *queries.PetView {
	return &queries.PetView{
		ID:        b.ID,
		TutorName: b.TutorName,
		Name:      b.Name,
		Species:   b.Species,
		Breed:     b.Breed,
		AgeYears:  b.AgeYears,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *PetBuilder) WithID(id uuid.UUID) *PetBuilder {
	b.ID = id
	return b
}

func (b *PetBuilder) WithName(name string) *PetBuilder {
	b.Name = name
	return b
}

func (b *PetBuilder) WithSpecies(species string) *PetBuilder {
	b.Species = species
	return b
}

func (b *PetBuilder) AsCat() *PetBuilder {
	b.Name = "Mia"
	b.Species = "cat"
	b.Breed = "Siamese"
	return b
}
