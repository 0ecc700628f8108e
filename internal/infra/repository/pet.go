package repository

import (
	"context"

	"groomly/internal/domain/pet"
	"groomly/internal/infra"
	"groomly/internal/infra/db"

	"github.com/google/uuid"
)

type PetRepository struct {
	db db.DBTX
}

func NewPetRepository(dbtx db.DBTX) *PetRepository {
	return &PetRepository{db: dbtx}
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) (uuid.UUID, error) {
	const query = `
		INSERT INTO pets (id, tutor_name, name, species, breed, age_years, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		p.ID(),
		p.TutorName(),
		p.Name(),
		string(p.Species()),
		p.Breed(),
		p.AgeYears(),
		p.Notes(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pet", err)
	}
	return id, nil
}

func (r *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	const query = `
		UPDATE pets
		SET tutor_name = $2,
		    name = $3,
		    species = $4,
		    breed = $5,
		    age_years = $6,
		    notes = $7,
		    updated_at = now()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		p.ID(),
		p.TutorName(),
		p.Name(),
		string(p.Species()),
		p.Breed(),
		p.AgeYears(),
		p.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "pet not found")
	}
	return nil
}
