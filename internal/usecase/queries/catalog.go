package queries

import (
	"context"
)

type CatalogViewRepo interface {
	FindByID(ctx context.Context, id int64) (*ServiceView, error)
	FindActive(ctx context.Context) ([]*ServiceView, error)
	FindAll(ctx context.Context) ([]*ServiceView, error)
}

type CatalogQueries interface {
	GetByID(ctx context.Context, id int64) (*ServiceView, error)
	// List returns the active catalogue; includeInactive widens it to
	// everything, retired services included.
	List(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
}

type catalogQueriesImpl struct {
	repo CatalogViewRepo
}

func NewCatalogQueries(repo CatalogViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, id int64) (*ServiceView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *catalogQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*ServiceView, error) {
	if includeInactive {
		return q.repo.FindAll(ctx)
	}
	return q.repo.FindActive(ctx)
}
