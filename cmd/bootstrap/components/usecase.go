package components

import (
	"event-booking-engine/internal/pkg/clock"
	"event-booking-engine/internal/usecase/commands"
	"event-booking-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewStatusCommands,
		commands.NewAvailabilityCommands,
		commands.NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewConflictQueries,
		queries.NewEventQueries,
		queries.NewAvailabilityQueries,
	),
)
