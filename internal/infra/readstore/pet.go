package readstore

import (
	"context"

	"groomly/internal/infra"
	"groomly/internal/infra/db"
	"groomly/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetReadStore struct {
	db db.DBTX
}

func NewPetReadStore(dbtx db.DBTX) *PetReadStore {
	return &PetReadStore{db: dbtx}
}

func (s *PetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PetView, error) {
	const query = `
		SELECT id, tutor_name, name, species, breed, age_years, notes, created_at, updated_at
		FROM pets
		WHERE id = $1
	`

	var v queries.PetView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.TutorName, &v.Name, &v.Species, &v.Breed, &v.AgeYears, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pet", err)
	}
	return &v, nil
}

func (s *PetReadStore) FindAll(ctx context.Context) ([]*queries.PetView, error) {
	const query = `
		SELECT id, tutor_name, name, species, breed, age_years, notes, created_at, updated_at
		FROM pets
		ORDER BY name
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	defer rows.Close()

	views := []*queries.PetView{}
	for rows.Next() {
		var v queries.PetView
		err := rows.Scan(
			&v.ID, &v.TutorName, &v.Name, &v.Species, &v.Breed, &v.AgeYears, &v.Notes,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pet rows", err)
	}
	return views, nil
}
