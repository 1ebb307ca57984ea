package event

// Status is the lifecycle state of an event booking.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the event claims its venue and resources.
// Only submitted and approved events participate in conflict sets.
func (s Status) IsActive() bool {
	return s == StatusSubmitted || s == StatusApproved
}

// allowedTransitions is the full state machine:
// draft → submitted → {approved, rejected}; approved → {completed, cancelled}.
var allowedTransitions = map[Status][]Status{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
	StatusApproved:  {StatusCompleted, StatusCancelled},
}

func (s Status) canTransitionTo(target Status) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// CancellationReason is required when an approved event is cancelled.
type CancellationReason string

const (
	ReasonConflictWithOtherEvent CancellationReason = "conflict_with_other_event"
	ReasonVenueUnavailable       CancellationReason = "venue_unavailable"
	ReasonRequestorCancelled     CancellationReason = "requestor_cancelled"
	ReasonInsufficientResources  CancellationReason = "insufficient_resources"
	ReasonWeatherEmergency       CancellationReason = "weather_emergency"
	ReasonOther                  CancellationReason = "other"
)

func (r CancellationReason) String() string {
	return string(r)
}

func (r CancellationReason) IsValid() bool {
	switch r {
	case ReasonConflictWithOtherEvent, ReasonVenueUnavailable, ReasonRequestorCancelled,
		ReasonInsufficientResources, ReasonWeatherEmergency, ReasonOther:
		return true
	default:
		return false
	}
}

// RequirementKind distinguishes countable inventory from services.
type RequirementKind string

const (
	KindPhysical RequirementKind = "physical"
	KindService  RequirementKind = "service"
)

func (k RequirementKind) String() string {
	return string(k)
}

func (k RequirementKind) IsValid() bool {
	return k == KindPhysical || k == KindService
}
