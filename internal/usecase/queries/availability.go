package queries

import (
	"context"
	"time"

	"event-booking-engine/internal/pkg/errs"
)

var ErrInvalidDateRange = errs.New("invalid date range")

// AvailabilityFilter narrows an availability listing. Empty Department or
// RequirementName leaves that dimension unfiltered, so a requester can read
// the dates a supplying department declared for one resource.
type AvailabilityFilter struct {
	Department      string
	RequirementName string
	From            time.Time
	To              time.Time
}

type AvailabilityReadStore interface {
	ListRange(ctx context.Context, filter AvailabilityFilter) ([]*AvailabilityView, error)
}

type AvailabilityQueries interface {
	ListRange(ctx context.Context, filter AvailabilityFilter) ([]*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) ListRange(ctx context.Context, filter AvailabilityFilter) ([]*AvailabilityView, error) {
	if filter.To.Before(filter.From) {
		return nil, ErrInvalidDateRange
	}
	return q.store.ListRange(ctx, filter)
}
