//go:build unit || e2e

package builder

import (
	"time"

	"event-booking-engine/internal/domain/availability"
	reqdto "event-booking-engine/internal/handler/dto/request"
)

type AvailabilityBuilder struct {
	Department      string
	RequirementID   string
	RequirementName string
	Date            time.Time
	Available       bool
	Quantity        int
	Notes           string
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	return &AvailabilityBuilder{
		Department:      "AV",
		RequirementID:   "av-projector",
		RequirementName: "Projector",
		Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Available:       true,
		Quantity:        3,
	}
}

func (b *AvailabilityBuilder) With(mutate func(*AvailabilityBuilder)) *AvailabilityBuilder {
	mutate(b)
	return b
}

func (b *AvailabilityBuilder) BuildDomain() (*availability.Record, error) {
	return availability.NewRecord(
		b.Department,
		b.RequirementID,
		b.RequirementName,
		b.Date,
		b.Available,
		b.Quantity,
		b.Notes,
	)
}

func (b *AvailabilityBuilder) MustBuildDomain() *availability.Record {
	rec, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return rec
}

func (b *AvailabilityBuilder) BuildUpsertRequestDTO() reqdto.UpsertAvailabilityRequest {
	return reqdto.UpsertAvailabilityRequest{
		RequirementID:   b.RequirementID,
		RequirementName: b.RequirementName,
		Date:            b.Date.Format("2006-01-02"),
		Available:       b.Available,
		Quantity:        b.Quantity,
		Notes:           b.Notes,
	}
}
