package api

import (
	"net/http"
	"strconv"
	"strings"

	"groomly/internal/domain/schedule"
	resdto "groomly/internal/handler/dto/response"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Day availability
// @Description List free start times on a date for the selected services
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param services query string false "Comma-separated service IDs"
// @Param step query int false "Slot step in minutes (default 15)"
// @Success 200 {object} resdto.DaySlotsResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetDaySlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	var serviceIDs []string
	if raw := c.Query("services"); raw != "" {
		serviceIDs = strings.Split(raw, ",")
	}

	step := 0
	if raw := c.Query("step"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "step must be a positive integer",
			})
			return
		}
		step = parsed
	}

	view, err := h.availabilityQueries.DaySlots(c.Request.Context(), date, serviceIDs, step)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		case errs.Is(err, schedule.ErrInvalidStep):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot step",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDaySlotsView(view))
}
