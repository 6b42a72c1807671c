package components

import (
	"barbershop-booking/internal/infra/memstore"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			memstore.NewAppointmentStore,
			fx.As(new(commands.AppointmentRepository)),
			fx.As(new(queries.AppointmentReadStore)),
		),
	),
)
