package components

import (
	"event-booking-engine/internal/handler"
	"event-booking-engine/internal/handler/api"
	"event-booking-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewEventHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
