package components

import (
	"sweetbloom/internal/handler"
	"sweetbloom/internal/handler/api"
	"sweetbloom/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewCheckoutHandler,
		api.NewRewardsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
