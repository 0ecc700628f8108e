package components

import (
	"time"

	"groomly/internal/pkg/clock"
	"groomly/internal/pkg/config"
	"groomly/internal/usecase/commands"
	"groomly/internal/usecase/queries"
	"groomly/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewCatalogQueries,
		queries.NewPetQueries,
		func(repo queries.AvailabilityReadRepo, clk clock.Clock, loc *time.Location, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(repo, clk, loc, cfg.Booking.SlotStepMinutes)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, apptQueries queries.AppointmentQueries, clk clock.Clock, loc *time.Location, cfg config.Config) commands.AppointmentCommands {
			return commands.NewAppointmentUseCase(uow, apptQueries, clk, loc, cfg.Booking.SlotStepMinutes)
		},
		commands.NewCatalogUseCase,
		commands.NewPetUseCase,
	),
)
