package response

import (
	"time"

	"groomly/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	PriceCents      int64     `json:"priceCents"`
	DurationMinutes int       `json:"durationMinutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromServiceView(rm *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromServiceViews(rms []*queries.ServiceView) []*ServiceResponse {
	resp := make([]*ServiceResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromServiceView(rm)
	}
	return resp
}
