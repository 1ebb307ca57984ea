package response

import (
	"event-booking-engine/internal/usecase/queries"
)

type BlockedSlotsResponse struct {
	Location string   `json:"location"`
	Date     string   `json:"date"`
	Slots    []string `json:"blockedSlots"`
}

// Venue and resource check results serialize directly from the query layer;
// sharing the read models keeps the preview and the commit-side detail
// payloads in the same shape.
type VenueCheckResponse = queries.VenueCheckResult

type ResourceCheckResponse = queries.ResourceCheckResult
