package components

import (
	"vtv-turnos/internal/handler"
	"vtv-turnos/internal/handler/api"
	"vtv-turnos/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAdminHandler,
		api.NewSlotHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
