package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"groomly/internal/domain/schedule"
	"groomly/internal/infra/db"
	"groomly/internal/infra/readstore"
	"groomly/internal/infra/repository"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable so a concurrent booking cannot pass the availability check
// and insert between this transaction's check and its insert.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	appointmentRepo  shared.AppointmentRepository
	catalogRepo      shared.CatalogRepository
	petRepo          shared.PetRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.dbtx)
	}
	return t.appointmentRepo
}

func (t *pgTx) Catalog() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.dbtx)
	}
	return t.catalogRepo
}

func (t *pgTx) Pets() shared.PetRepository {
	if t.petRepo == nil {
		t.petRepo = repository.NewPetRepository(t.dbtx)
	}
	return t.petRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	catalogStore     *readstore.CatalogReadStore
	petStore         *readstore.PetReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{dbtx: dbtx}
}

func (r *commandReads) appointments() *readstore.AppointmentReadStore {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.dbtx)
	}
	return r.appointmentStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) DurationMinutes(ctx context.Context, serviceID int64) (int, bool, error) {
	return r.catalog().DurationMinutes(ctx, serviceID)
}

func (r *commandReads) ActiveOnDate(ctx context.Context, date time.Time) ([]schedule.BusyInterval, error) {
	return r.appointments().ActiveOnDate(ctx, date)
}

func (r *commandReads) TotalPriceCents(ctx context.Context, serviceIDs []int64) (int64, error) {
	return r.catalog().TotalPriceCents(ctx, serviceIDs)
}

func (r *commandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	return r.appointments().FindSnapshotByID(ctx, id)
}

func (r *commandReads) ServiceByID(ctx context.Context, id int64) (*shared.ServiceSnapshot, error) {
	view, err := r.catalog().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ServiceSnapshot{
		ID:              view.ID,
		Name:            view.Name,
		Description:     view.Description,
		PriceCents:      view.PriceCents,
		DurationMinutes: view.DurationMinutes,
		Active:          view.Active,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}, nil
}

func (r *commandReads) PetByID(ctx context.Context, id uuid.UUID) (*shared.PetSnapshot, error) {
	if r.petStore == nil {
		r.petStore = readstore.NewPetReadStore(r.dbtx)
	}
	view, err := r.petStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.PetSnapshot{
		ID:        view.ID,
		TutorName: view.TutorName,
		Name:      view.Name,
		Species:   view.Species,
		Breed:     view.Breed,
		AgeYears:  view.AgeYears,
		Notes:     view.Notes,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}, nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.dbtx)
	}
	return r.idempotencyStore.Get(ctx, key)
}
