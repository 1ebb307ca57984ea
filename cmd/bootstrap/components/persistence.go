package components

import (
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/infra/readstore"
	"event-booking-engine/internal/infra/uow"
	"event-booking-engine/internal/usecase/queries"
	"event-booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(shared.CatalogReads)),
		),
		fx.Annotate(
			readstore.NewCommandReadStore,
			fx.As(new(queries.ConflictReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
