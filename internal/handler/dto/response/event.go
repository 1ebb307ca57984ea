package response

import (
	"time"

	"event-booking-engine/internal/pkg/errs"
	"event-booking-engine/internal/usecase/commands"
	"event-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID                  uuid.UUID                                     `json:"id"`
	Title               string                                        `json:"title"`
	Location            string                                        `json:"location"`
	Date                string                                        `json:"date"`
	StartTime           *string                                       `json:"startTime,omitempty"`
	EndTime             *string                                       `json:"endTime,omitempty"`
	Status              string                                        `json:"status"`
	RequesterDepartment string                                        `json:"requesterDepartment"`
	TaggedDepartments   []string                                      `json:"taggedDepartments"`
	Requirements        map[string][]queries.RequirementSelectionView `json:"departmentRequirements,omitempty"`
	CancellationReason  *string                                       `json:"cancellationReason,omitempty"`
	CreatedAt           time.Time                                     `json:"createdAt"`
	UpdatedAt           time.Time                                     `json:"updatedAt"`
}

type EventListResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Date      string    `json:"date"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateEventResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type UpdateStatusResponse struct {
	ID      uuid.UUID `json:"id"`
	Status  string    `json:"status"`
	Changed bool      `json:"changed"`
}

func FromEventView(view *queries.EventView) (*EventResponse, error) {
	resp := &EventResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map event view")
	}
	resp.Date = view.Date.Format("2006-01-02")
	return resp, nil
}

func FromEventListItem(item *queries.EventListItem) (*EventListResponse, error) {
	resp := &EventListResponse{}
	if err := copier.Copy(resp, item); err != nil {
		return nil, errs.Wrap(err, "failed to map event list item")
	}
	resp.Date = item.Date.Format("2006-01-02")
	return resp, nil
}

func FromCreateEventResult(result *commands.CreateEventResult) *CreateEventResponse {
	return &CreateEventResponse{
		ID:     result.EventID,
		Status: string(result.Status),
	}
}

func FromUpdateStatusResult(result *commands.UpdateStatusResult) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:      result.EventID,
		Status:  string(result.Status),
		Changed: result.Changed,
	}
}
