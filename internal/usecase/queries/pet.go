package queries

import (
	"context"

	"github.com/google/uuid"
)

type PetViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	FindAll(ctx context.Context) ([]*PetView, error)
}

type PetQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	List(ctx context.Context) ([]*PetView, error)
}

type petQueriesImpl struct {
	repo PetViewRepo
}

func NewPetQueries(repo PetViewRepo) PetQueries {
	return &petQueriesImpl{repo: repo}
}

func (q *petQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PetView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *petQueriesImpl) List(ctx context.Context) ([]*PetView, error) {
	return q.repo.FindAll(ctx)
}
