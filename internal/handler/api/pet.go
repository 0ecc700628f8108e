package api

import (
	"net/http"

	reqdto "groomly/internal/handler/dto/request"
	resdto "groomly/internal/handler/dto/response"
	"groomly/internal/infra"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/commands"
	"groomly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PetHandler struct {
	petCommands        commands.PetCommands
	petQueries         queries.PetQueries
	appointmentQueries queries.AppointmentQueries
}

func NewPetHandler(
	petCommands commands.PetCommands,
	petQueries queries.PetQueries,
	appointmentQueries queries.AppointmentQueries,
) *PetHandler {
	return &PetHandler{
		petCommands:        petCommands,
		petQueries:         petQueries,
		appointmentQueries: appointmentQueries,
	}
}

// @Summary List pets
// @Tags pets
// @Produce json
// @Success 200 {array} resdto.PetResponse
// @Router /pets [get]
func (h *PetHandler) ListPets(c *gin.Context) {
	views, err := h.petQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetViews(views))
}

// @Summary Get pet
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.PetResponse
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [get]
func (h *PetHandler) GetPet(c *gin.Context) {
	id, ok := parsePetID(c)
	if !ok {
		return
	}

	view, err := h.petQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary Pet appointment history
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Router /pets/{id}/appointments [get]
func (h *PetHandler) ListPetAppointments(c *gin.Context) {
	id, ok := parsePetID(c)
	if !ok {
		return
	}

	items, err := h.appointmentQueries.ListByPet(c.Request.Context(), id)
	if err != nil {
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

// @Summary Register pet
// @Tags pets
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePetRequest true "Pet"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pets [post]
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req reqdto.CreatePetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.petCommands.CreatePet(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.PetID})
}

// @Summary Update pet
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body reqdto.UpdatePetRequest true "Pet"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [put]
func (h *PetHandler) UpdatePet(c *gin.Context) {
	id, ok := parsePetID(c)
	if !ok {
		return
	}

	var req reqdto.UpdatePetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.petCommands.UpdatePet(c.Request.Context(), id, req.ToCommand()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete pet
// @Description Remove a pet. Its appointments keep the denormalized pet name.
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [delete]
func (h *PetHandler) DeletePet(c *gin.Context) {
	id, ok := parsePetID(c)
	if !ok {
		return
	}

	if err := h.petCommands.DeletePet(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parsePetID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pet ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *PetHandler) respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrPetNotFound), infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Pet not found",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
