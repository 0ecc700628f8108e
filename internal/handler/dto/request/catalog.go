package request

import "groomly/internal/usecase/commands"

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description,omitempty"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

func (r CreateServiceRequest) ToCommand() commands.CreateServiceRequest {
	return commands.CreateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
	}
}

type UpdateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description,omitempty"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

func (r UpdateServiceRequest) ToCommand() commands.UpdateServiceRequest {
	return commands.UpdateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
	}
}
