package api

import (
	"net/http"
	"strconv"

	reqdto "groomly/internal/handler/dto/request"
	resdto "groomly/internal/handler/dto/response"
	"groomly/internal/infra"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/commands"
	"groomly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List services
// @Description List the grooming catalogue
// @Tags services
// @Produce json
// @Param include_inactive query bool false "Include retired services"
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	views, err := h.catalogQueries.List(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := parseServiceID(c)
	if !ok {
		return
	}

	view, err := h.catalogQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.catalogCommands.CreateService(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.ServiceID})
}

// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Service"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := parseServiceID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateService(c.Request.Context(), id, req.ToCommand()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Retire service
// @Description Deactivate a service. History keeps referencing it; new
// @Description bookings cannot select it.
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := parseServiceID(c)
	if !ok {
		return
	}

	if err := h.catalogCommands.DeactivateService(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseServiceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return 0, false
	}
	return id, true
}

func (h *CatalogHandler) respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrServiceNotFound), infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
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
