package request

import (
	"errors"
	"time"

	"event-booking-engine/internal/domain/availability"
	"event-booking-engine/internal/usecase/commands"
)

var ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")

type UpsertAvailabilityRequest struct {
	RequirementID   string `json:"requirementId" binding:"required"`
	RequirementName string `json:"requirementName" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Available       bool   `json:"available"`
	Quantity        int    `json:"quantity" binding:"min=0"`
	Notes           string `json:"notes"`
}

func (r UpsertAvailabilityRequest) ToParams(department string) (commands.UpsertAvailabilityParams, error) {
	day, err := ParseDate(r.Date)
	if err != nil {
		return commands.UpsertAvailabilityParams{}, err
	}
	return commands.UpsertAvailabilityParams{
		Department:      department,
		RequirementID:   r.RequirementID,
		RequirementName: r.RequirementName,
		Date:            day,
		Available:       r.Available,
		Quantity:        r.Quantity,
		Notes:           r.Notes,
	}, nil
}

type BulkAvailabilityRequest struct {
	Month     string `json:"month" binding:"required"`
	Operation string `json:"operation" binding:"required,oneof=setAvailable setUnavailable delete"`
}

func (r BulkAvailabilityRequest) ToParams(department string) (commands.BulkApplyParams, error) {
	month, err := time.Parse("2006-01", r.Month)
	if err != nil {
		return commands.BulkApplyParams{}, ErrInvalidMonth
	}
	return commands.BulkApplyParams{
		Department: department,
		Month:      month,
		Operation:  availability.BulkOperation(r.Operation),
	}, nil
}
