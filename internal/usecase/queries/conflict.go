package queries

import (
	"context"
	"time"

	"event-booking-engine/internal/domain/allocation"
	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/pkg/errs"
)

var (
	ErrInvalidTimeWindow = errs.New("invalid time window")
)

// ConflictReadStore supplies the active-event snapshot conflict checks run
// against. Implementations must restrict to submitted/approved statuses.
type ConflictReadStore interface {
	ActiveEventsOn(ctx context.Context, date time.Time) ([]*event.Event, error)
}

type CheckVenueParams struct {
	Location string
	Date     time.Time
	Start    event.TimeOfDay
	End      event.TimeOfDay
}

type VenueCheckResult struct {
	Conflicting bool                   `json:"conflicting"`
	Events      []ConflictingEventView `json:"conflictingEvents,omitempty"`
}

type CheckResourceParams struct {
	RequirementName  string
	Date             time.Time
	Start            event.TimeOfDay
	End              event.TimeOfDay
	DeclaredCapacity int
	Requested        int
}

type ResourceCheckResult struct {
	HasConflict bool                `json:"hasConflict"`
	Consumed    int                 `json:"consumed"`
	Remaining   int                 `json:"remaining"`
	Allowed     bool                `json:"allowed"`
	Claims      []ResourceClaimView `json:"claims,omitempty"`
}

type ConflictQueries interface {
	// CheckVenue reports whether the candidate window hard-conflicts with an
	// active booking at the same location (half-open overlap).
	CheckVenue(ctx context.Context, params CheckVenueParams) (*VenueCheckResult, error)
	// CheckResource computes remaining availability of a named requirement
	// over the candidate window. A soft preview: saving is refused elsewhere
	// when Requested exceeds Remaining.
	CheckResource(ctx context.Context, params CheckResourceParams) (*ResourceCheckResult, error)
	// BlockedSlots enumerates the 30-minute slots of the date that are not
	// selectable at the location, using the inclusive boundary rule.
	BlockedSlots(ctx context.Context, location string, date time.Time) ([]string, error)
}

type conflictQueriesImpl struct {
	store ConflictReadStore
}

func NewConflictQueries(store ConflictReadStore) ConflictQueries {
	return &conflictQueriesImpl{store: store}
}

func (q *conflictQueriesImpl) CheckVenue(ctx context.Context, params CheckVenueParams) (*VenueCheckResult, error) {
	span, err := event.NewTimeSpan(params.Date, params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeWindow)
	}

	active, err := q.store.ActiveEventsOn(ctx, span.DateOf())
	if err != nil {
		return nil, err
	}

	conflicts := event.VenueConflicts(span, params.Location, active)
	result := &VenueCheckResult{Conflicting: len(conflicts) > 0}
	for _, e := range conflicts {
		view := ConflictingEventView{
			ID:       e.ID(),
			Title:    e.Title(),
			Location: e.Location(),
		}
		if s := e.StartTime(); s != nil {
			view.StartTime = s.String()
		}
		if s := e.EndTime(); s != nil {
			view.EndTime = s.String()
		}
		result.Events = append(result.Events, view)
	}
	return result, nil
}

func (q *conflictQueriesImpl) CheckResource(ctx context.Context, params CheckResourceParams) (*ResourceCheckResult, error) {
	span, err := event.NewTimeSpan(params.Date, params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeWindow)
	}

	active, err := q.store.ActiveEventsOn(ctx, span.DateOf())
	if err != nil {
		return nil, err
	}

	overlapping := event.OverlappingActive(span, active)
	claims := allocation.ClaimsAgainst(params.RequirementName, overlapping)

	consumed := 0
	views := make([]ResourceClaimView, len(claims))
	for i, c := range claims {
		consumed += c.Quantity
		views[i] = ResourceClaimView{
			EventID:    c.EventID,
			EventTitle: c.EventTitle,
			Department: c.Department,
			Quantity:   c.Quantity,
		}
	}

	remaining := allocation.Remaining(params.DeclaredCapacity, consumed)
	return &ResourceCheckResult{
		HasConflict: len(claims) > 0,
		Consumed:    consumed,
		Remaining:   remaining,
		Allowed:     params.Requested <= remaining,
		Claims:      views,
	}, nil
}

func (q *conflictQueriesImpl) BlockedSlots(ctx context.Context, location string, date time.Time) ([]string, error) {
	active, err := q.store.ActiveEventsOn(ctx, event.Date(date))
	if err != nil {
		return nil, err
	}

	var blocked []string
	for _, slot := range event.SlotGrid() {
		if event.SlotBlocked(slot, date, location, active) {
			blocked = append(blocked, slot.String())
		}
	}
	return blocked, nil
}
