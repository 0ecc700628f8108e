package repository

import (
	"context"
	"time"

	"groomly/internal/infra"
	"groomly/internal/infra/db"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

// TryInsert claims the key if it is new or expired. An existing live key is
// left untouched; the caller reads it back to decide between replay and
// conflict. A row is affected only when the insert lands or an expired key
// is reclaimed, so RowsAffected tells us whether the claim is ours.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const query = `
		INSERT INTO idempotency_keys (key, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, 'processing', $4)
		ON CONFLICT (key) DO UPDATE
		SET endpoint = EXCLUDED.endpoint,
		    request_hash = EXCLUDED.request_hash,
		    status = 'processing',
		    result_appointment_id = NULL,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = now()
		WHERE idempotency_keys.expires_at < now()
	`

	tag, err := r.db.Exec(ctx, query, key, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, key uuid.UUID, resultAppointmentID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed',
		    result_appointment_id = $2,
		    updated_at = now()
		WHERE key = $1
	`

	tag, err := r.db.Exec(ctx, query, key, resultAppointmentID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "idempotency key not found")
	}
	return nil
}
