package bootstrap

import (
	"context"

	"event-booking-engine/internal/infra/db"
	"event-booking-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pgx pool and registers its cleanup on application stop.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
