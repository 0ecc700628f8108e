package api

import (
	"context"
	"errors"
	"net/http"

	"groomly/internal/domain/appointment"
	"groomly/internal/domain/schedule"
	reqdto "groomly/internal/handler/dto/request"
	resdto "groomly/internal/handler/dto/response"
	"groomly/internal/infra"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/commands"
	"groomly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Create appointment
// @Description Book a grooming appointment with idempotency key
// @Tags appointments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.appointmentCommands.Create(c.Request.Context(), req.ToCommand(), idempotencyKey)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromAppointmentView(result.Appointment))
}

// @Summary Get appointment
// @Description Get appointment by ID
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments by date
// @Description List the appointments booked on a date
// @Tags appointments
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	items, err := h.appointmentQueries.ListByDate(c.Request.Context(), date)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AppointmentListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAppointmentListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Reschedule appointment
// @Description Move an appointment to a new slot and service selection
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RescheduleAppointmentRequest true "New slot"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	var req reqdto.RescheduleAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCommands.Reschedule(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Confirm appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/confirm [post]
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	h.runTransition(c, h.appointmentCommands.Confirm)
}

// @Summary Complete appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	h.runTransition(c, h.appointmentCommands.Complete)
}

// @Summary Cancel appointment
// @Description Cancel an appointment, releasing its slot
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CancelAppointmentRequest true "Cancellation reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	var req reqdto.CancelAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.appointmentCommands.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) runTransition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseAppointmentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *AppointmentHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrAppointmentNotFound), infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Appointment not found",
		})
	case errs.Is(err, commands.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "The requested slot is already taken",
		})
	case errs.Is(err, commands.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Duplicate booking request with different parameters",
		})
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking request is currently being processed",
		})
	case errs.Is(err, commands.ErrInvalidDate), errs.Is(err, queries.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
	case errs.Is(err, commands.ErrInvalidStartTime):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start time, expected HH:MM",
		})
	case errs.Is(err, schedule.ErrOffGridStart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Start time does not fall on the slot grid",
		})
	case errs.Is(err, commands.ErrBookingInPast):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking is in the past",
		})
	case errs.Is(err, appointment.ErrInvalidTransition), errs.Is(err, appointment.ErrNotReschedulable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Appointment status does not allow this operation",
		})
	case errs.Is(err, commands.ErrDomainValidation), errs.Is(err, appointment.ErrEmptyCancelReason):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errors.New("Idempotency-Key header is required")
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
