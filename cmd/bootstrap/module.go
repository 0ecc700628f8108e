package bootstrap

import (
	"groomly/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	TimeZoneModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
