//go:build unit || e2e

package builder

import (
	"time"

	reqdto "groomly/internal/handler/dto/request"
	"groomly/internal/usecase/queries"
)

type ServiceBuilder struct {
	ID              int64
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	now := time.Now()
	return &ServiceBuilder{
		ID:              1,
		Name:            "Banho",
		Description:     "Banho completo com secagem",
		PriceCents:      6000,
		DurationMinutes: 45,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
	}
}

func (b *ServiceBuilder) BuildUpdateRequestDTO() reqdto.UpdateServiceRequest {
	return reqdto.UpdateServiceRequest{
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
	}
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:              b.ID,
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
		Active:          b.Active,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *ServiceBuilder) WithID(id int64) *ServiceBuilder {
	b.ID = id
	return b
}

func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.Name = name
	return b
}

func (b *ServiceBuilder) WithPriceCents(cents int64) *ServiceBuilder {
	b.PriceCents = cents
	return b
}

func (b *ServiceBuilder) WithDurationMinutes(minutes int) *ServiceBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *ServiceBuilder) AsInactive() *ServiceBuilder {
	b.Active = false
	return b
}
