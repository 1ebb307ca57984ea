package commands

import (
	"context"
	"log/slog"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/pkg/clock"
	"event-booking-engine/internal/pkg/errs"
	"event-booking-engine/internal/usecase/shared"
)

type SweepCommands interface {
	// CompleteExpired transitions every approved event whose end instant is
	// strictly in the past to completed, returning how many were updated.
	// When nothing qualifies it performs zero writes.
	CompleteExpired(ctx context.Context) (int, error)
}

type sweepCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewSweepCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) SweepCommands {
	return &sweepCommandsImpl{uow: uow, clock: clock, logger: logger}
}

func (c *sweepCommandsImpl) CompleteExpired(ctx context.Context) (int, error) {
	completed := 0
	now := c.clock.Now()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The unit of work re-runs the closure on serialization failures.
		completed = 0

		expired, err := tx.Events().ApprovedEndedBefore(ctx, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(expired) == 0 {
			return nil
		}

		for _, e := range expired {
			if err := e.TransitionTo(event.StatusCompleted, nil, now); err != nil {
				// A concurrent writer reached a terminal state first; the
				// sweep loses quietly and moves on.
				c.logger.Warn("skipping auto-completion",
					"event_id", e.ID().String(),
					"status", e.Status().String(),
					"error", err.Error())
				continue
			}
			if err := tx.Events().UpdateStatus(ctx, e); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			completed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if completed > 0 {
		c.logger.Info("auto-completed expired events", "count", completed)
	}
	return completed, nil
}
