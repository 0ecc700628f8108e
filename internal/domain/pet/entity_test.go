//go:build unit

package pet_test

import (
	"testing"

	"groomly/internal/domain/pet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseSpecies(t *testing.T) {
	for _, raw := range []string{"dog", "Cat", " BIRD ", "rodent", "other"} {
		t.Run(raw, func(t *testing.T) {
			_, err := pet.ParseSpecies(raw)
			assert.NoError(t, err)
		})
	}

	t.Run("unknown species", func(t *testing.T) {
		_, err := pet.ParseSpecies("dragon")
		assert.ErrorIs(t, err, pet.ErrInvalidSpecies)
	})
}

func TestNewPet(t *testing.T) {
	t.Run("valid pet", func(t *testing.T) {
		p, err := pet.NewPet(" Maria Silva ", " Thor ", pet.SpeciesDog, " Golden Retriever ", intPtr(3), "")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, "Maria Silva", p.TutorName())
		assert.Equal(t, "Thor", p.Name())
		assert.Equal(t, pet.SpeciesDog, p.Species())
		assert.Equal(t, "Golden Retriever", p.Breed())
		assert.Equal(t, 3, *p.AgeYears())
	})

	t.Run("age is optional", func(t *testing.T) {
		p, err := pet.NewPet("Maria Silva", "Thor", pet.SpeciesDog, "", nil, "")
		require.NoError(t, err)
		assert.Nil(t, p.AgeYears())
	})

	tests := []struct {
		name      string
		tutorName string
		petName   string
		species   pet.Species
		ageYears  *int
		errIs     error
	}{
		{name: "blank tutor name", tutorName: "  ", petName: "Thor", species: pet.SpeciesDog, errIs: pet.ErrEmptyTutorName},
		{name: "blank pet name", tutorName: "Maria", petName: "", species: pet.SpeciesDog, errIs: pet.ErrEmptyName},
		{name: "unknown species", tutorName: "Maria", petName: "Thor", species: "dragon", errIs: pet.ErrInvalidSpecies},
		{name: "negative age", tutorName: "Maria", petName: "Thor", species: pet.SpeciesDog, ageYears: intPtr(-1), errIs: pet.ErrInvalidAge},
		{name: "implausible age", tutorName: "Maria", petName: "Thor", species: pet.SpeciesDog, ageYears: intPtr(31), errIs: pet.ErrInvalidAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pet.NewPet(tt.tutorName, tt.petName, tt.species, "", tt.ageYears, "")
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	newPet := func(t *testing.T) *pet.Pet {
		t.Helper()
		p, err := pet.NewPet("Maria Silva", "Thor", pet.SpeciesDog, "Golden Retriever", intPtr(3), "")
		require.NoError(t, err)
		return p
	}

	t.Run("replaces mutable fields and keeps identity", func(t *testing.T) {
		p := newPet(t)
		id := p.ID()

		require.NoError(t, p.UpdateProfile("Joao Souza", "Loki", pet.SpeciesCat, "Siamese", intPtr(5), "bites"))

		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Joao Souza", p.TutorName())
		assert.Equal(t, "Loki", p.Name())
		assert.Equal(t, pet.SpeciesCat, p.Species())
		assert.Equal(t, "Siamese", p.Breed())
		assert.Equal(t, "bites", p.Notes())
	})

	t.Run("rejects invalid updates without mutating", func(t *testing.T) {
		p := newPet(t)

		assert.ErrorIs(t, p.UpdateProfile("", "Loki", pet.SpeciesCat, "", nil, ""), pet.ErrEmptyTutorName)
		assert.Equal(t, "Maria Silva", p.TutorName())
		assert.Equal(t, "Thor", p.Name())
	})
}
