package components

import (
	"time"

	"barbershop-booking/internal/domain/policy"
	"barbershop-booking/internal/observability/metrics"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(loc *time.Location) clock.Clock {
		return clock.NewRealClock(loc)
	},
	fx.Annotate(
		metrics.NewBookingMetrics,
		fx.As(new(queries.QuoteObserver)),
		fx.As(new(commands.BookingObserver)),
	),
	func(store *policy.Store) queries.PolicyReader { return store },
	func(store *policy.Store) commands.PolicyWriter { return store },
	func(store *policy.Store) commands.BookingValidator { return store },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentUseCase,
		commands.NewPolicyUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewCatalogQueries,
		queries.NewPolicyQueries,
	),
)
