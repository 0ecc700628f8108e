package response

import "groomly/internal/usecase/queries"

type DaySlotsResponse struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

func FromDaySlotsView(rm *queries.DaySlotsView) *DaySlotsResponse {
	return &DaySlotsResponse{
		Date:            rm.Date,
		DurationMinutes: rm.DurationMinutes,
		Slots:           rm.Slots,
	}
}
