package components

import (
	"vtv-turnos/internal/pkg/password"
	"vtv-turnos/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		func() usecase.PasswordComparer {
			return password.ComparePassword
		},
		usecase.NewAuthUseCase,
		usecase.NewAdminUseCase,
		usecase.NewSlotUseCase,
		usecase.NewInspectionUseCase,
	),
)
