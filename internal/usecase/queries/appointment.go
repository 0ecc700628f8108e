package queries

import (
	"context"
	"time"

	"groomly/internal/pkg/errs"

	"github.com/google/uuid"
)

type AppointmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByDate(ctx context.Context, date time.Time) ([]*AppointmentListItem, error)
	FindByPetID(ctx context.Context, petID uuid.UUID) ([]*AppointmentListItem, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByDate(ctx context.Context, date string) ([]*AppointmentListItem, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentViewRepo
	loc  *time.Location
}

func NewAppointmentQueries(repo AppointmentViewRepo, loc *time.Location) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo, loc: loc}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByDate(ctx context.Context, date string) ([]*AppointmentListItem, error) {
	day, err := time.ParseInLocation("2006-01-02", date, q.loc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	return q.repo.FindByDate(ctx, day)
}

func (q *appointmentQueriesImpl) ListByPet(ctx context.Context, petID uuid.UUID) ([]*AppointmentListItem, error) {
	return q.repo.FindByPetID(ctx, petID)
}
