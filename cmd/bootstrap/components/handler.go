package components

import (
	"library-admin/internal/handler"
	"library-admin/internal/handler/api"
	"library-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLoanHandler,
		api.NewBookHandler,
		api.NewUserHandler,
		api.NewActivityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
