//go:build unit

package event_test

import (
	"testing"
	"time"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func activeEvent(t *testing.T, mutate func(*builder.EventBuilder)) *event.Event {
	t.Helper()
	return builder.NewEventBuilder().With(mutate).MustBuildDomain()
}

func legacyEvent(location string, date time.Time, status event.Status) *event.Event {
	return event.ReconstructEvent(
		uuid.New(), "Legacy booking", location, date,
		nil, nil,
		status, "Facilities", nil, nil, nil,
		time.Now(), time.Now(),
	)
}

func TestVenueConflicts(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	candidate := mustSpan(t, date, "10:00", "12:00")

	t.Run("overlapping booking at the same location conflicts", func(t *testing.T) {
		existing := activeEvent(t, func(b *builder.EventBuilder) {
			b.Start, b.End = "11:00", "13:00"
		})
		conflicts := event.VenueConflicts(candidate, "Main Auditorium", []*event.Event{existing})
		assert.Len(t, conflicts, 1)
	})

	t.Run("same window at a different location does not conflict", func(t *testing.T) {
		existing := activeEvent(t, func(b *builder.EventBuilder) {
			b.Location = "Gym"
			b.Start, b.End = "10:00", "12:00"
		})
		assert.Empty(t, event.VenueConflicts(candidate, "Main Auditorium", []*event.Event{existing}))
	})

	t.Run("location match is exact", func(t *testing.T) {
		existing := activeEvent(t, func(b *builder.EventBuilder) {
			b.Location = "main auditorium"
			b.Start, b.End = "10:00", "12:00"
		})
		assert.Empty(t, event.VenueConflicts(candidate, "Main Auditorium", []*event.Event{existing}))
	})

	t.Run("inactive statuses are excluded", func(t *testing.T) {
		for _, status := range []event.Status{event.StatusDraft, event.StatusRejected, event.StatusCompleted, event.StatusCancelled} {
			e := event.ReconstructEvent(
				uuid.New(), "Inactive", "Main Auditorium", date,
				timePtr(t, "10:00"), timePtr(t, "12:00"),
				status, "Facilities", nil, nil, nil,
				time.Now(), time.Now(),
			)
			assert.Empty(t, event.VenueConflicts(candidate, "Main Auditorium", []*event.Event{e}), "status %s", status)
		}
	})

	t.Run("events without times fail open", func(t *testing.T) {
		e := legacyEvent("Main Auditorium", date, event.StatusApproved)
		assert.Empty(t, event.VenueConflicts(candidate, "Main Auditorium", []*event.Event{e}))
	})

	t.Run("adjacent windows do not conflict", func(t *testing.T) {
		before := activeEvent(t, func(b *builder.EventBuilder) { b.Start, b.End = "08:00", "10:00" })
		after := activeEvent(t, func(b *builder.EventBuilder) { b.Start, b.End = "12:00", "14:00" })
		assert.Empty(t, event.VenueConflicts(candidate, "Main Auditorium", []*event.Event{before, after}))
	})
}

func TestOverlappingActive(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	candidate := mustSpan(t, date, "10:00", "12:00")

	// Resource claims pool across venues: any overlapping active event counts.
	sameVenue := activeEvent(t, func(b *builder.EventBuilder) { b.Start, b.End = "09:00", "11:00" })
	otherVenue := activeEvent(t, func(b *builder.EventBuilder) {
		b.Location = "Gym"
		b.Start, b.End = "11:00", "13:00"
	})
	disjoint := activeEvent(t, func(b *builder.EventBuilder) { b.Start, b.End = "14:00", "16:00" })

	overlapping := event.OverlappingActive(candidate, []*event.Event{sameVenue, otherVenue, disjoint})
	assert.Len(t, overlapping, 2)
}

func TestSlotBlocked(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	existing := activeEvent(t, func(b *builder.EventBuilder) { b.Start, b.End = "10:00", "12:00" })
	events := []*event.Event{existing}

	assert.True(t, event.SlotBlocked(mustTime(t, "10:00"), date, "Main Auditorium", events))
	assert.True(t, event.SlotBlocked(mustTime(t, "12:00"), date, "Main Auditorium", events), "end boundary stays blocked on the slot grid")
	assert.False(t, event.SlotBlocked(mustTime(t, "12:30"), date, "Main Auditorium", events))
	assert.False(t, event.SlotBlocked(mustTime(t, "10:00"), date, "Gym", events))
	assert.False(t, event.SlotBlocked(mustTime(t, "10:00"), date.AddDate(0, 0, 1), "Main Auditorium", events))
}

func timePtr(t *testing.T, s string) *event.TimeOfDay {
	t.Helper()
	tod := mustTime(t, s)
	return &tod
}
