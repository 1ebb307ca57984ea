//go:build unit || e2e

package builder

import (
	"time"

	domevent "event-booking-engine/internal/domain/event"
	reqdto "event-booking-engine/internal/handler/dto/request"
)

type EventBuilder struct {
	Title               string
	Location            string
	Date                time.Time
	Start               string
	End                 string
	Status              domevent.Status
	RequesterDepartment string
	Requirements        map[string][]domevent.RequirementSelection
	Now                 time.Time
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		Title:               "Quarterly All-Hands",
		Location:            "Main Auditorium",
		Date:                time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Start:               "09:00",
		End:                 "11:00",
		Status:              domevent.StatusSubmitted,
		RequesterDepartment: "Facilities",
		Requirements: map[string][]domevent.RequirementSelection{
			"AV": {
				{
					RequirementID: "av-projector",
					Name:          "Projector",
					Kind:          domevent.KindPhysical,
					Selected:      true,
					Quantity:      1,
				},
			},
		},
		Now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) Span() (domevent.TimeSpan, error) {
	start, err := domevent.ParseTimeOfDay(b.Start)
	if err != nil {
		return domevent.TimeSpan{}, err
	}
	end, err := domevent.ParseTimeOfDay(b.End)
	if err != nil {
		return domevent.TimeSpan{}, err
	}
	return domevent.NewTimeSpan(b.Date, start, end)
}

func (b *EventBuilder) BuildDomain() (*domevent.Event, error) {
	span, err := b.Span()
	if err != nil {
		return nil, err
	}
	return domevent.NewEvent(
		b.Title,
		b.Location,
		span,
		b.Status,
		b.RequesterDepartment,
		b.Requirements,
		b.Now,
	)
}

// MustBuildDomain panics on builder misuse; tests configuring invalid input
// should use BuildDomain and assert the error.
func (b *EventBuilder) MustBuildDomain() *domevent.Event {
	e, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return e
}

func (b *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	reqs := make(map[string][]reqdto.RequirementSelectionRequest, len(b.Requirements))
	for dept, sels := range b.Requirements {
		converted := make([]reqdto.RequirementSelectionRequest, len(sels))
		for i, sel := range sels {
			converted[i] = reqdto.RequirementSelectionRequest{
				RequirementID: sel.RequirementID,
				Name:          sel.Name,
				Kind:          string(sel.Kind),
				Selected:      sel.Selected,
				Quantity:      sel.Quantity,
				Notes:         sel.Notes,
				Custom:        sel.Custom,
			}
		}
		reqs[dept] = converted
	}
	return reqdto.CreateEventRequest{
		Title:        b.Title,
		Location:     b.Location,
		Date:         b.Date.Format("2006-01-02"),
		StartTime:    b.Start,
		EndTime:      b.End,
		Submit:       b.Status == domevent.StatusSubmitted,
		Requirements: reqs,
	}
}
