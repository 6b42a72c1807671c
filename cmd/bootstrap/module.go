package bootstrap

import (
	"barbershop-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	PolicyModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
