package request

import (
	"strings"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/usecase/commands"
)

type RequirementSelectionRequest struct {
	RequirementID string `json:"requirementId" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Kind          string `json:"kind" binding:"required,oneof=physical service"`
	Selected      bool   `json:"selected"`
	Quantity      int    `json:"quantity" binding:"min=0"`
	Notes         string `json:"notes"`
	Custom        bool   `json:"custom"`
}

type CreateEventRequest struct {
	Title        string                                   `json:"title" binding:"required"`
	Location     string                                   `json:"location" binding:"required"`
	Date         string                                   `json:"date" binding:"required"`
	StartTime    string                                   `json:"startTime" binding:"required"`
	EndTime      string                                   `json:"endTime" binding:"required"`
	Submit       bool                                     `json:"submit"`
	Requirements map[string][]RequirementSelectionRequest `json:"departmentRequirements"`
}

// ToParams builds the command input. The requester department comes from the
// authenticated caller, never from the body.
func (r CreateEventRequest) ToParams(requesterDepartment string) (commands.CreateEventParams, error) {
	day, start, end, err := parseWindow(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreateEventParams{}, err
	}

	var reqs map[string][]event.RequirementSelection
	if len(r.Requirements) > 0 {
		reqs = make(map[string][]event.RequirementSelection, len(r.Requirements))
		for dept, sels := range r.Requirements {
			converted := make([]event.RequirementSelection, len(sels))
			for i, sel := range sels {
				converted[i] = event.RequirementSelection{
					RequirementID: sel.RequirementID,
					Name:          strings.TrimSpace(sel.Name),
					Kind:          event.RequirementKind(sel.Kind),
					Selected:      sel.Selected,
					Quantity:      sel.Quantity,
					Notes:         sel.Notes,
					Custom:        sel.Custom,
				}
			}
			reqs[dept] = converted
		}
	}

	return commands.CreateEventParams{
		Title:               strings.TrimSpace(r.Title),
		Location:            strings.TrimSpace(r.Location),
		Date:                day,
		Start:               start,
		End:                 end,
		Submit:              r.Submit,
		RequesterDepartment: requesterDepartment,
		Requirements:        reqs,
	}, nil
}

type UpdateStatusRequest struct {
	Status             string  `json:"status" binding:"required"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// cancellationReasons maps the camelCase wire values onto the domain enum.
var cancellationReasons = map[string]event.CancellationReason{
	"conflictWithOtherEvent": event.ReasonConflictWithOtherEvent,
	"venueUnavailable":       event.ReasonVenueUnavailable,
	"requestorCancelled":     event.ReasonRequestorCancelled,
	"insufficientResources":  event.ReasonInsufficientResources,
	"weatherEmergency":       event.ReasonWeatherEmergency,
	"other":                  event.ReasonOther,
}

func (r UpdateStatusRequest) Reason() *event.CancellationReason {
	if r.CancellationReason == nil {
		return nil
	}
	// Unknown values pass through verbatim so the domain rejects them.
	reason, ok := cancellationReasons[*r.CancellationReason]
	if !ok {
		reason = event.CancellationReason(*r.CancellationReason)
	}
	return &reason
}
