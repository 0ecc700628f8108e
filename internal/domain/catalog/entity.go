package catalog

import (
	"strings"
	"time"

	"groomly/internal/pkg/errs"
)

var (
	ErrEmptyName       = errs.New("service name is required")
	ErrNegativePrice   = errs.New("service price cannot be negative")
	ErrInvalidDuration = errs.New("service duration must be positive")
)

// Service is one entry of the grooming catalogue. The id is assigned by the
// database on insert and stays zero until then.
type Service struct {
	id              int64
	name            string
	description     string
	priceCents      int64
	durationMinutes int
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewService(name, description string, priceCents int64, durationMinutes int) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Service{
		name:            name,
		description:     strings.TrimSpace(description),
		priceCents:      priceCents,
		durationMinutes: durationMinutes,
		active:          true,
	}, nil
}

func ReconstructService(
	id int64,
	name, description string,
	priceCents int64,
	durationMinutes int,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:              id,
		name:            name,
		description:     description,
		priceCents:      priceCents,
		durationMinutes: durationMinutes,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Service) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.name = name
	s.description = strings.TrimSpace(description)
	return nil
}

func (s *Service) Reprice(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativePrice
	}
	s.priceCents = priceCents
	return nil
}

func (s *Service) Retime(durationMinutes int) error {
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	s.durationMinutes = durationMinutes
	return nil
}

// Deactivate hides the service from new bookings. Existing appointments keep
// referencing it for their history.
func (s *Service) Deactivate() { s.active = false }
func (s *Service) Activate()   { s.active = true }

func (s *Service) ID() int64            { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) IsActive() bool       { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
