package event

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle           = errors.New("event title is required")
	ErrEmptyLocation        = errors.New("event location is required")
	ErrInvalidInitialStatus = errors.New("events are created as draft or submitted")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrUnknownStatus        = errors.New("unknown status")
	ErrReasonRequired       = errors.New("cancellation reason is required")
	ErrInvalidReason        = errors.New("unknown cancellation reason")
)

// Event is a booking of a venue and a set of per-department resource claims
// for one same-day time window. Start/end times may be absent on records
// reconstructed from older data; such events cannot participate in conflict
// determination (they are excluded, never treated as conflicting).
type Event struct {
	id                  uuid.UUID
	title               string
	location            string
	date                time.Time
	start               *TimeOfDay
	end                 *TimeOfDay
	status              Status
	requesterDepartment string
	taggedDepartments   []string
	requirements        map[string][]RequirementSelection
	cancellationReason  *CancellationReason
	createdAt           time.Time
	updatedAt           time.Time
}

func NewEvent(
	title string,
	location string,
	span TimeSpan,
	status Status,
	requesterDepartment string,
	requirements map[string][]RequirementSelection,
	now time.Time,
) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if status != StatusDraft && status != StatusSubmitted {
		return nil, ErrInvalidInitialStatus
	}

	tagged := make([]string, 0, len(requirements))
	for dept, sels := range requirements {
		for _, sel := range sels {
			if err := sel.Validate(); err != nil {
				return nil, err
			}
		}
		tagged = append(tagged, dept)
	}

	start := span.Start()
	end := span.End()
	return &Event{
		id:                  uuid.New(),
		title:               title,
		location:            location,
		date:                span.DateOf(),
		start:               &start,
		end:                 &end,
		status:              status,
		requesterDepartment: requesterDepartment,
		taggedDepartments:   tagged,
		requirements:        requirements,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructEvent rebuilds an entity from storage without validation.
// Times are pointers: legacy rows may lack them.
func ReconstructEvent(
	id uuid.UUID,
	title, location string,
	date time.Time,
	start, end *TimeOfDay,
	status Status,
	requesterDepartment string,
	taggedDepartments []string,
	requirements map[string][]RequirementSelection,
	cancellationReason *CancellationReason,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:                  id,
		title:               title,
		location:            location,
		date:                Date(date),
		start:               start,
		end:                 end,
		status:              status,
		requesterDepartment: requesterDepartment,
		taggedDepartments:   taggedDepartments,
		requirements:        requirements,
		cancellationReason:  cancellationReason,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (e *Event) ID() uuid.UUID               { return e.id }
func (e *Event) Title() string               { return e.title }
func (e *Event) Location() string            { return e.location }
func (e *Event) DateOf() time.Time           { return e.date }
func (e *Event) StartTime() *TimeOfDay       { return e.start }
func (e *Event) EndTime() *TimeOfDay         { return e.end }
func (e *Event) Status() Status              { return e.status }
func (e *Event) RequesterDepartment() string { return e.requesterDepartment }
func (e *Event) TaggedDepartments() []string { return e.taggedDepartments }
func (e *Event) CreatedAt() time.Time        { return e.createdAt }
func (e *Event) UpdatedAt() time.Time        { return e.updatedAt }

func (e *Event) CancellationReason() *CancellationReason { return e.cancellationReason }

// Requirements returns the ordered selection list for one tagged department.
func (e *Event) Requirements(department string) []RequirementSelection {
	return e.requirements[department]
}

// AllRequirements returns the full per-department selection map.
func (e *Event) AllRequirements() map[string][]RequirementSelection {
	return e.requirements
}

// Span returns the event's time window. ok is false when either time-of-day
// is missing; callers must then exclude the event from conflict checks.
func (e *Event) Span() (TimeSpan, bool) {
	if e.start == nil || e.end == nil {
		return TimeSpan{}, false
	}
	if !e.start.Before(*e.end) {
		return TimeSpan{}, false
	}
	return TimeSpan{date: e.date, start: *e.start, end: *e.end}, true
}

// HasEnded reports whether the event's end instant is strictly in the past.
// Events without a known end time never auto-expire.
func (e *Event) HasEnded(now time.Time) bool {
	span, ok := e.Span()
	if !ok {
		return false
	}
	return span.EndInstant().Before(now)
}

// TransitionTo applies a status change under the lifecycle rules.
// Transitioning to the current status is an idempotent no-op. A reason is
// required for (and only recorded on) cancellation.
func (e *Event) TransitionTo(target Status, reason *CancellationReason, now time.Time) error {
	if !target.IsValid() {
		return ErrUnknownStatus
	}
	if target == e.status {
		return nil
	}
	if !e.status.canTransitionTo(target) {
		return ErrInvalidTransition
	}
	if target == StatusCancelled {
		if reason == nil {
			return ErrReasonRequired
		}
		if !reason.IsValid() {
			return ErrInvalidReason
		}
		e.cancellationReason = reason
	}
	e.status = target
	e.updatedAt = now
	return nil
}
