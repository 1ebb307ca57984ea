package readstore

import (
	"context"
	"time"

	"event-booking-engine/internal/domain/availability"
	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/infra/repository"
)

// CommandReadStore backs validation reads for commands and the conflict
// check queries. It reuses the entity repositories over whatever DBTX it is
// given, so the same type serves both pool-bound previews and in-transaction
// re-checks.
type CommandReadStore struct {
	events *repository.EventRepository
	avail  *repository.AvailabilityRepository
}

func NewCommandReadStore(db infra.DBTX) *CommandReadStore {
	return &CommandReadStore{
		events: repository.NewEventRepository(db),
		avail:  repository.NewAvailabilityRepository(db),
	}
}

func (r *CommandReadStore) ActiveEventsOn(ctx context.Context, date time.Time) ([]*event.Event, error) {
	return r.events.ActiveOn(ctx, date)
}

// AvailabilityOn returns nil without error when no record exists for the key;
// callers fall back to the catalog default quantity.
func (r *CommandReadStore) AvailabilityOn(ctx context.Context, department, requirementID string, date time.Time) (*availability.Record, error) {
	rec, err := r.avail.FindOne(ctx, department, requirementID, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}
