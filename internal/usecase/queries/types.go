package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type EventView struct {
	ID                  uuid.UUID                             `json:"id"`
	Title               string                                `json:"title"`
	Location            string                                `json:"location"`
	Date                time.Time                             `json:"date"`
	StartTime           *string                               `json:"startTime,omitempty"`
	EndTime             *string                               `json:"endTime,omitempty"`
	Status              string                                `json:"status"`
	RequesterDepartment string                                `json:"requesterDepartment"`
	TaggedDepartments   []string                              `json:"taggedDepartments"`
	Requirements        map[string][]RequirementSelectionView `json:"departmentRequirements"`
	CancellationReason  *string                               `json:"cancellationReason,omitempty"`
	CreatedAt           time.Time                             `json:"createdAt"`
	UpdatedAt           time.Time                             `json:"updatedAt"`
}

type RequirementSelectionView struct {
	RequirementID string `json:"requirementId"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Selected      bool   `json:"selected"`
	Quantity      int    `json:"quantity,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Custom        bool   `json:"custom,omitempty"`
}

type EventListItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Date      time.Time `json:"date"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type AvailabilityView struct {
	Department      string    `json:"department"`
	RequirementID   string    `json:"requirementId"`
	RequirementName string    `json:"requirementName"`
	Date            time.Time `json:"date"`
	Available       bool      `json:"available"`
	Quantity        int       `json:"quantity"`
	Notes           string    `json:"notes,omitempty"`
}

// ConflictingEventView identifies one blocking booking in a check response.
type ConflictingEventView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

// ResourceClaimView is one event's hold on a requirement in a check response.
type ResourceClaimView struct {
	EventID    uuid.UUID `json:"eventId"`
	EventTitle string    `json:"eventTitle"`
	Department string    `json:"department"`
	Quantity   int       `json:"quantity"`
}
