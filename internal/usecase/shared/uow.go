package shared

import (
	"context"
	"time"

	"groomly/internal/domain/appointment"
	"groomly/internal/domain/catalog"
	"groomly/internal/domain/pet"
	"groomly/internal/domain/schedule"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction for ordinary write operations,
	// retried on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: the availability-check-then-insert guard. The core
	// never locks anything itself, so the check and the write share one
	// serializable transaction.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command-side reads outside a transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Catalog() CatalogRepository
	Pets() PetRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads deliberately satisfies both collaborator interfaces of the
// scheduling core: schedule.DurationSource via DurationMinutes and
// schedule.AppointmentSource via ActiveOnDate.
type CommandReads interface {
	DurationMinutes(ctx context.Context, serviceID int64) (int, bool, error)
	ActiveOnDate(ctx context.Context, date time.Time) ([]schedule.BusyInterval, error)
	TotalPriceCents(ctx context.Context, serviceIDs []int64) (int64, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	ServiceByID(ctx context.Context, id int64) (*ServiceSnapshot, error)
	PetByID(ctx context.Context, id uuid.UUID) (*PetSnapshot, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) (uuid.UUID, error)
	Update(ctx context.Context, appt *appointment.Appointment) error
}

type CatalogRepository interface {
	Create(ctx context.Context, svc *catalog.Service) (int64, error)
	Update(ctx context.Context, svc *catalog.Service) error
}

type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet) (uuid.UUID, error)
	Update(ctx context.Context, p *pet.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key when it is new or expired and reports whether
	// the claim succeeded. A live key belonging to another request is left
	// untouched and claimed is false.
	TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (claimed bool, err error)
	UpdateStatusCompleted(ctx context.Context, key uuid.UUID, resultAppointmentID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
