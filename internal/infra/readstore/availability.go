package readstore

import (
	"context"
	"time"

	"groomly/internal/domain/schedule"
	"groomly/internal/infra/db"
)

// AvailabilityReadStore joins the two feeds the scheduling core needs:
// service durations from the catalogue and busy intervals from the book.
type AvailabilityReadStore struct {
	catalog      *CatalogReadStore
	appointments *AppointmentReadStore
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		catalog:      NewCatalogReadStore(dbtx),
		appointments: NewAppointmentReadStore(dbtx),
	}
}

func (s *AvailabilityReadStore) DurationMinutes(ctx context.Context, serviceID int64) (int, bool, error) {
	return s.catalog.DurationMinutes(ctx, serviceID)
}

func (s *AvailabilityReadStore) ActiveOnDate(ctx context.Context, date time.Time) ([]schedule.BusyInterval, error) {
	return s.appointments.ActiveOnDate(ctx, date)
}
