// Package allocation computes remaining availability of a named requirement
// against the set of overlapping active bookings.
//
// Claims pool by requirement display name, not identifier: catalog and custom
// requirements with the same label share one quantity pool, across every
// tagged department of every overlapping event. This mirrors how departments
// actually label shared inventory, at the cost of collision risk between
// unrelated requirements that happen to share a name.
package allocation

import (
	"event-booking-engine/internal/domain/event"

	"github.com/google/uuid"
)

// Claim is one event's hold on a requirement, for conflict detail reporting.
type Claim struct {
	EventID    uuid.UUID
	EventTitle string
	Department string
	Quantity   int
}

// ClaimsAgainst extracts every quantity hold on requirementName from the
// given events (assumed to be the overlapping active set). Service-kind and
// unselected selections contribute nothing.
func ClaimsAgainst(requirementName string, events []*event.Event) []Claim {
	var claims []Claim
	for _, e := range events {
		for _, dept := range e.TaggedDepartments() {
			for _, sel := range e.Requirements(dept) {
				if !sel.ClaimsQuantity() {
					continue
				}
				if sel.Name != requirementName {
					continue
				}
				claims = append(claims, Claim{
					EventID:    e.ID(),
					EventTitle: e.Title(),
					Department: dept,
					Quantity:   sel.Quantity,
				})
			}
		}
	}
	return claims
}

// ConsumedQuantity sums every claim on requirementName across events.
func ConsumedQuantity(requirementName string, events []*event.Event) int {
	total := 0
	for _, c := range ClaimsAgainst(requirementName, events) {
		total += c.Quantity
	}
	return total
}

// Remaining is declared capacity minus consumed, floored at zero. Zero
// capacity is valid and always yields zero.
func Remaining(capacity, consumed int) int {
	if capacity < 0 {
		capacity = 0
	}
	remaining := capacity - consumed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// HasClaim reports whether any overlapping event holds requirementName.
func HasClaim(requirementName string, events []*event.Event) bool {
	return len(ClaimsAgainst(requirementName, events)) > 0
}
