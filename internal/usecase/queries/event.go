package queries

import (
	"context"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound       = errs.New("event not found")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context, status *string, limit int32) ([]*EventListItem, error)
}

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context, statusFilter *string, limit int) ([]*EventListItem, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *eventQueriesImpl) List(ctx context.Context, statusFilter *string, limit int) ([]*EventListItem, error) {
	if statusFilter != nil && !event.Status(*statusFilter).IsValid() {
		return nil, ErrInvalidStatusFilter
	}
	if limit <= 0 {
		limit = 100
	}
	return q.store.List(ctx, statusFilter, int32(limit))
}
