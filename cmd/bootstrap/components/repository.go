package components

import (
	"vtv-turnos/internal/infra/db"
	"vtv-turnos/internal/infra/repository"
	"vtv-turnos/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewVehicleRepository,
			fx.As(new(usecase.VehicleRepository)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(usecase.SlotRepository)),
		),
		fx.Annotate(
			repository.NewResultRepository,
			fx.As(new(usecase.ResultRepository)),
		),
		fx.Annotate(
			db.NewPgxUnitOfWork,
			fx.As(new(usecase.UnitOfWork)),
		),
	),
)
