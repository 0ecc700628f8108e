package readstore

import (
	"context"
	"errors"

	"groomly/internal/infra"
	"groomly/internal/infra/db"
	"groomly/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (s *CatalogReadStore) FindByID(ctx context.Context, id int64) (*queries.ServiceView, error) {
	const query = `
		SELECT id, name, description, price_cents, duration_minutes, active, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var v queries.ServiceView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Description, &v.PriceCents, &v.DurationMinutes,
		&v.Active, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &v, nil
}

func (s *CatalogReadStore) FindActive(ctx context.Context) ([]*queries.ServiceView, error) {
	return s.list(ctx, `
		SELECT id, name, description, price_cents, duration_minutes, active, created_at, updated_at
		FROM services
		WHERE active
		ORDER BY name
	`)
}

func (s *CatalogReadStore) FindAll(ctx context.Context) ([]*queries.ServiceView, error) {
	return s.list(ctx, `
		SELECT id, name, description, price_cents, duration_minutes, active, created_at, updated_at
		FROM services
		ORDER BY name
	`)
}

func (s *CatalogReadStore) list(ctx context.Context, query string) ([]*queries.ServiceView, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views := []*queries.ServiceView{}
	for rows.Next() {
		var v queries.ServiceView
		err := rows.Scan(
			&v.ID, &v.Name, &v.Description, &v.PriceCents, &v.DurationMinutes,
			&v.Active, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return views, nil
}

// DurationMinutes reports the duration of one active service. A missing or
// inactive service is not an error; it just does not exist for booking.
func (s *CatalogReadStore) DurationMinutes(ctx context.Context, id int64) (int, bool, error) {
	const query = `SELECT duration_minutes FROM services WHERE id = $1 AND active`

	var minutes int
	err := s.db.QueryRow(ctx, query, id).Scan(&minutes)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, infra.WrapRepoErr("failed to read service duration", err)
	}
	return minutes, true, nil
}

// TotalPriceCents sums the prices of the selected active services. Unnest
// keeps duplicate selections counted twice, matching the duration total.
func (s *CatalogReadStore) TotalPriceCents(ctx context.Context, serviceIDs []int64) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(s.price_cents), 0)
		FROM unnest($1::bigint[]) AS sel(id)
		JOIN services s ON s.id = sel.id AND s.active
	`

	var total int64
	if err := s.db.QueryRow(ctx, query, serviceIDs).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum service prices", err)
	}
	return total, nil
}
