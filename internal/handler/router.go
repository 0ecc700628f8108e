package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"groomly/internal/handler/api"
	"groomly/internal/handler/middleware"
	"groomly/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	catalogHandler *api.CatalogHandler,
	petHandler *api.PetHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, appointmentHandler, catalogHandler, petHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	catalogHandler *api.CatalogHandler,
	petHandler *api.PetHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetDaySlots},
		})

		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.CreateAppointment},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.ListAppointments},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.GetAppointment},
				{Method: http.MethodPut, Path: "/:id", Handler: appointmentHandler.RescheduleAppointment},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: appointmentHandler.ConfirmAppointment},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: appointmentHandler.CompleteAppointment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: appointmentHandler.CancelAppointment},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListServices},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateService},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetService},
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteService},
			})
		}

		pets := apiGroup.Group("/pets")
		{
			addRoutes(pets, []route{
				{Method: http.MethodGet, Path: "", Handler: petHandler.ListPets},
				{Method: http.MethodPost, Path: "", Handler: petHandler.CreatePet},
				{Method: http.MethodGet, Path: "/:id", Handler: petHandler.GetPet},
				{Method: http.MethodPut, Path: "/:id", Handler: petHandler.UpdatePet},
				{Method: http.MethodDelete, Path: "/:id", Handler: petHandler.DeletePet},
				{Method: http.MethodGet, Path: "/:id/appointments", Handler: petHandler.ListPetAppointments},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
