package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"event-booking-engine/internal/infra/sweeper"
	"event-booking-engine/internal/pkg/config"
	"event-booking-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

// StartSweeper runs the auto-completion loop for the process lifetime. It is
// optional; disabling it leaves expired events approved until the next
// replica, or a manual transition, completes them.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, cmds commands.SweepCommands, logger *slog.Logger) {
	if !cfg.Sweep.Enabled {
		logger.Info("auto-completion sweep disabled")
		return
	}

	s := sweeper.New(cmds, cfg.Sweep.Interval)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("sweeper stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
