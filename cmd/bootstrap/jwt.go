package bootstrap

import (
	"event-booking-engine/internal/handler/middleware"
	"event-booking-engine/internal/pkg/config"
	"event-booking-engine/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) middleware.TokenValidator { return s },
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
