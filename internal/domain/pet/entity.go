package pet

import (
	"strings"
	"time"

	"groomly/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errs.New("pet name is required")
	ErrEmptyTutorName = errs.New("tutor name is required")
	ErrInvalidSpecies = errs.New("unknown pet species")
	ErrInvalidAge     = errs.New("pet age must be between 0 and 30 years")
)

type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRodent Species = "rodent"
	SpeciesOther  Species = "other"
)

func ParseSpecies(s string) (Species, error) {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesDog:
		return SpeciesDog, nil
	case SpeciesCat:
		return SpeciesCat, nil
	case SpeciesBird:
		return SpeciesBird, nil
	case SpeciesRodent:
		return SpeciesRodent, nil
	case SpeciesOther:
		return SpeciesOther, nil
	default:
		return "", ErrInvalidSpecies
	}
}

func (s Species) String() string { return string(s) }

type Pet struct {
	id        uuid.UUID
	tutorName string
	name      string
	species   Species
	breed     string
	ageYears  *int
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

func NewPet(tutorName, name string, species Species, breed string, ageYears *int, notes string) (*Pet, error) {
	tutorName = strings.TrimSpace(tutorName)
	if tutorName == "" {
		return nil, ErrEmptyTutorName
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := ParseSpecies(string(species)); err != nil {
		return nil, err
	}
	if ageYears != nil && (*ageYears < 0 || *ageYears > 30) {
		return nil, ErrInvalidAge
	}

	return &Pet{
		id:        uuid.New(),
		tutorName: tutorName,
		name:      name,
		species:   species,
		breed:     strings.TrimSpace(breed),
		ageYears:  ageYears,
		notes:     strings.TrimSpace(notes),
	}, nil
}

func ReconstructPet(
	id uuid.UUID,
	tutorName, name string,
	species Species,
	breed string,
	ageYears *int,
	notes string,
	createdAt, updatedAt time.Time,
) *Pet {
	return &Pet{
		id:        id,
		tutorName: tutorName,
		name:      name,
		species:   species,
		breed:     breed,
		ageYears:  ageYears,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateProfile replaces the mutable fields, keeping identity and timestamps.
func (p *Pet) UpdateProfile(tutorName, name string, species Species, breed string, ageYears *int, notes string) error {
	tutorName = strings.TrimSpace(tutorName)
	if tutorName == "" {
		return ErrEmptyTutorName
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	parsed, err := ParseSpecies(string(species))
	if err != nil {
		return err
	}
	if ageYears != nil && (*ageYears < 0 || *ageYears > 30) {
		return ErrInvalidAge
	}

	p.tutorName = tutorName
	p.name = name
	p.species = parsed
	p.breed = strings.TrimSpace(breed)
	p.ageYears = ageYears
	p.notes = strings.TrimSpace(notes)
	return nil
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) TutorName() string    { return p.tutorName }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Species() Species     { return p.species }
func (p *Pet) Breed() string        { return p.breed }
func (p *Pet) AgeYears() *int       { return p.ageYears }
func (p *Pet) Notes() string        { return p.notes }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time { return p.updatedAt }
