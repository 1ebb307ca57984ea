package bootstrap

import (
	"event-booking-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
