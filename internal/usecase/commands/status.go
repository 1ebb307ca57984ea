package commands

import (
	"context"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/pkg/clock"
	"event-booking-engine/internal/pkg/errs"
	"event-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound     = errs.New("event not found")
	ErrInvalidTransition = errs.New("invalid status transition")
)

type UpdateStatusParams struct {
	EventID uuid.UUID
	Target  event.Status
	Reason  *event.CancellationReason
}

type UpdateStatusResult struct {
	EventID uuid.UUID
	Status  event.Status
	Changed bool
}

type StatusCommands interface {
	UpdateStatus(ctx context.Context, params UpdateStatusParams) (*UpdateStatusResult, error)
}

type statusCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewStatusCommands(uow shared.UnitOfWork, clock clock.Clock) StatusCommands {
	return &statusCommandsImpl{uow: uow, clock: clock}
}

// UpdateStatus applies a manual lifecycle transition. Re-applying the current
// status is an idempotent no-op with zero writes. Transitions out of a
// terminal state, or to an unknown status, fail with ErrInvalidTransition;
// the caller surfaces the error, nothing is retried here.
func (c *statusCommandsImpl) UpdateStatus(ctx context.Context, params UpdateStatusParams) (*UpdateStatusResult, error) {
	var result *UpdateStatusResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Events().FindByID(ctx, params.EventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		before := entity.Status()
		if err := entity.TransitionTo(params.Target, params.Reason, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if entity.Status() == before {
			result = &UpdateStatusResult{EventID: entity.ID(), Status: before, Changed: false}
			return nil
		}

		if err := tx.Events().UpdateStatus(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = &UpdateStatusResult{EventID: entity.ID(), Status: entity.Status(), Changed: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
