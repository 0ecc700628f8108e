package readstore

import (
	"context"

	"groomly/internal/infra"
	"groomly/internal/infra/db"
	"groomly/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(dbtx db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: dbtx}
}

func (s *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	const query = `
		SELECT key, endpoint, status, request_hash, result_appointment_id, expires_at
		FROM idempotency_keys
		WHERE key = $1
	`

	var rec shared.IdempotencyRecord
	err := s.db.QueryRow(ctx, query, key).Scan(
		&rec.Key, &rec.Endpoint, &rec.Status, &rec.RequestHash,
		&rec.ResultAppointmentID, &rec.ExpiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}
	return &rec, nil
}
