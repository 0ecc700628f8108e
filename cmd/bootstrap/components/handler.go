package components

import (
	"groomly/internal/handler"
	"groomly/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewCatalogHandler,
		api.NewPetHandler,
	),
	fx.Invoke(handler.NewRouter),
)
