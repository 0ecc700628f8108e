package repository

import (
	"context"

	"groomly/internal/domain/catalog"
	"groomly/internal/infra"
	"groomly/internal/infra/db"
)

type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: dbtx}
}

func (r *CatalogRepository) Create(ctx context.Context, svc *catalog.Service) (int64, error) {
	const query = `
		INSERT INTO services (name, description, price_cents, duration_minutes, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		svc.Name(),
		svc.Description(),
		svc.PriceCents(),
		svc.DurationMinutes(),
		svc.IsActive(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *CatalogRepository) Update(ctx context.Context, svc *catalog.Service) error {
	const query = `
		UPDATE services
		SET name = $2,
		    description = $3,
		    price_cents = $4,
		    duration_minutes = $5,
		    active = $6,
		    updated_at = now()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		svc.ID(),
		svc.Name(),
		svc.Description(),
		svc.PriceCents(),
		svc.DurationMinutes(),
		svc.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "service not found")
	}
	return nil
}
