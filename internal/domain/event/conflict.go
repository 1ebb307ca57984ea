package event

import "time"

// VenueConflicts returns the subset of events that hard-conflict with the
// candidate window at the given location: same location (exact string match),
// active status, overlapping span under half-open semantics. Events with
// missing time-of-day cannot be compared and are excluded; the check fails
// open rather than blocking on indeterminate data.
func VenueConflicts(candidate TimeSpan, location string, events []*Event) []*Event {
	var conflicts []*Event
	for _, e := range events {
		if !e.Status().IsActive() {
			continue
		}
		if e.Location() != location {
			continue
		}
		span, ok := e.Span()
		if !ok {
			continue
		}
		if span.Overlaps(candidate) {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

// OverlappingActive returns the active events, at any location, whose span
// overlaps the candidate window. This is the resource conflict set: resource
// claims pool across venues.
func OverlappingActive(candidate TimeSpan, events []*Event) []*Event {
	var overlapping []*Event
	for _, e := range events {
		if !e.Status().IsActive() {
			continue
		}
		span, ok := e.Span()
		if !ok {
			continue
		}
		if span.Overlaps(candidate) {
			overlapping = append(overlapping, e)
		}
	}
	return overlapping
}

// SlotBlocked reports whether a slot instant at the given location and date
// is unavailable for selection. Uses the inclusive boundary test: slots equal
// to an active event's exact start or end stay blocked on the picker.
func SlotBlocked(slot TimeOfDay, date time.Time, location string, events []*Event) bool {
	day := Date(date)
	for _, e := range events {
		if !e.Status().IsActive() {
			continue
		}
		if e.Location() != location {
			continue
		}
		span, ok := e.Span()
		if !ok {
			continue
		}
		if !span.DateOf().Equal(day) {
			continue
		}
		if span.BlocksSlot(slot) {
			return true
		}
	}
	return false
}
