//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/pkg/clock"
	"event-booking-engine/internal/usecase/commands"
	"event-booking-engine/internal/usecase/shared"
	"event-booking-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newBookingFixture(store *fakeStore, catalog *fakeCatalog) commands.BookingCommands {
	if catalog == nil {
		catalog = &fakeCatalog{requirements: map[string][]shared.CatalogRequirement{
			"AV": {{ID: "av-projector", Name: "Projector", Kind: event.KindPhysical, DefaultQuantity: 2}},
		}}
	}
	return commands.NewBookingCommands(&fakeUoW{store: store}, catalog, clock.NewMockClock(bookingNow))
}

func defaultParams(mutate func(*commands.CreateEventParams)) commands.CreateEventParams {
	params := commands.CreateEventParams{
		Title:               "Quarterly All-Hands",
		Location:            "Main Auditorium",
		Date:                time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Submit:              true,
		RequesterDepartment: "Facilities",
		Requirements: map[string][]event.RequirementSelection{
			"AV": {{RequirementID: "av-projector", Name: "Projector", Kind: event.KindPhysical, Selected: true, Quantity: 1}},
		},
	}
	params.Start, _ = event.ParseTimeOfDay("10:00")
	params.End, _ = event.ParseTimeOfDay("12:00")
	if mutate != nil {
		mutate(&params)
	}
	return params
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success persists the event and locks the schedule", func(t *testing.T) {
		store := newFakeStore()
		cmds := newBookingFixture(store, nil)

		result, err := cmds.CreateEvent(ctx, defaultParams(nil))
		require.NoError(t, err)
		assert.Equal(t, event.StatusSubmitted, result.Status)
		assert.Equal(t, 1, store.createCount)

		require.Len(t, store.lockCalls, 1)
		assert.Contains(t, store.lockCalls[0], "venue:Main Auditorium:2026-09-14")
		assert.Contains(t, store.lockCalls[0], "requirement:Projector:2026-09-14")
	})

	t.Run("draft save skips submitted status", func(t *testing.T) {
		store := newFakeStore()
		cmds := newBookingFixture(store, nil)

		result, err := cmds.CreateEvent(ctx, defaultParams(func(p *commands.CreateEventParams) {
			p.Submit = false
		}))
		require.NoError(t, err)
		assert.Equal(t, event.StatusDraft, result.Status)
	})

	t.Run("overlapping active booking at the location is rejected", func(t *testing.T) {
		store := newFakeStore()
		store.addEvent(builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Title = "Existing Meeting"
			b.Start, b.End = "11:00", "13:00"
		}).MustBuildDomain())
		cmds := newBookingFixture(store, nil)

		_, err := cmds.CreateEvent(ctx, defaultParams(nil))
		require.ErrorIs(t, err, commands.ErrVenueConflict)

		var detail *commands.VenueConflictDetail
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, "Main Auditorium", detail.Location)
		assert.Contains(t, detail.ConflictingTitles, "Existing Meeting")
		assert.Zero(t, store.createCount, "nothing may be written on a conflict")
	})

	t.Run("back to back booking at the location is allowed", func(t *testing.T) {
		store := newFakeStore()
		store.addEvent(builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Start, b.End = "08:00", "10:00"
		}).MustBuildDomain())
		cmds := newBookingFixture(store, nil)

		_, err := cmds.CreateEvent(ctx, defaultParams(nil))
		assert.NoError(t, err)
	})

	t.Run("requested quantity beyond remaining capacity is rejected", func(t *testing.T) {
		store := newFakeStore()
		// Capacity 3 declared for the date; an overlapping event claims 2.
		store.addAvailability(builder.NewAvailabilityBuilder().MustBuildDomain())
		store.addEvent(builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Location = "Gym"
			b.Start, b.End = "11:00", "13:00"
			b.Requirements = map[string][]event.RequirementSelection{
				"AV": {{RequirementID: "av-projector", Name: "Projector", Kind: event.KindPhysical, Selected: true, Quantity: 2}},
			}
		}).MustBuildDomain())
		cmds := newBookingFixture(store, nil)

		_, err := cmds.CreateEvent(ctx, defaultParams(func(p *commands.CreateEventParams) {
			p.Requirements["AV"][0].Quantity = 2
		}))
		require.ErrorIs(t, err, commands.ErrResourceOverAllocation)

		var detail *commands.OverAllocationDetail
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, "Projector", detail.Requirement)
		assert.Equal(t, 2, detail.Requested)
		assert.Equal(t, 1, detail.Remaining)
		assert.Equal(t, 3, detail.Capacity)
		assert.Zero(t, store.createCount)
	})

	t.Run("requested quantity within remaining capacity succeeds", func(t *testing.T) {
		store := newFakeStore()
		store.addAvailability(builder.NewAvailabilityBuilder().MustBuildDomain())
		store.addEvent(builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Location = "Gym"
			b.Start, b.End = "11:00", "13:00"
			b.Requirements = map[string][]event.RequirementSelection{
				"AV": {{RequirementID: "av-projector", Name: "Projector", Kind: event.KindPhysical, Selected: true, Quantity: 2}},
			}
		}).MustBuildDomain())
		cmds := newBookingFixture(store, nil)

		_, err := cmds.CreateEvent(ctx, defaultParams(nil)) // requests 1 of remaining 1
		assert.NoError(t, err)
	})

	t.Run("unavailable date supplies zero capacity regardless of quantity", func(t *testing.T) {
		store := newFakeStore()
		store.addAvailability(builder.NewAvailabilityBuilder().With(func(b *builder.AvailabilityBuilder) {
			b.Available = false
			b.Quantity = 5
		}).MustBuildDomain())
		cmds := newBookingFixture(store, nil)

		_, err := cmds.CreateEvent(ctx, defaultParams(nil))
		assert.ErrorIs(t, err, commands.ErrResourceOverAllocation)
	})

	t.Run("catalog default quantity backs dates without a record", func(t *testing.T) {
		store := newFakeStore() // no availability record: catalog default of 2 applies
		cmds := newBookingFixture(store, nil)

		_, err := cmds.CreateEvent(ctx, defaultParams(func(p *commands.CreateEventParams) {
			p.Requirements["AV"][0].Quantity = 2
		}))
		assert.NoError(t, err)

		_, err = cmds.CreateEvent(ctx, defaultParams(func(p *commands.CreateEventParams) {
			p.Start, _ = event.ParseTimeOfDay("14:00")
			p.End, _ = event.ParseTimeOfDay("16:00")
			p.Location = "Gym"
			p.Requirements["AV"][0].Quantity = 3
		}))
		assert.ErrorIs(t, err, commands.ErrResourceOverAllocation)
	})

	t.Run("custom requirements bypass allocation checks", func(t *testing.T) {
		store := newFakeStore()
		cmds := newBookingFixture(store, &fakeCatalog{requirements: map[string][]shared.CatalogRequirement{}})

		_, err := cmds.CreateEvent(ctx, defaultParams(func(p *commands.CreateEventParams) {
			p.Requirements = map[string][]event.RequirementSelection{
				"AV": {{RequirementID: "custom-1", Name: "Ice Sculpture", Kind: event.KindPhysical, Selected: true, Quantity: 99, Custom: true}},
			}
		}))
		assert.NoError(t, err)
	})

	t.Run("invalid window is rejected before any transaction", func(t *testing.T) {
		store := newFakeStore()
		cmds := newBookingFixture(store, nil)

		_, err := cmds.CreateEvent(ctx, defaultParams(func(p *commands.CreateEventParams) {
			p.Start, _ = event.ParseTimeOfDay("12:00")
			p.End, _ = event.ParseTimeOfDay("10:00")
		}))
		assert.ErrorIs(t, err, commands.ErrInvalidTimeWindow)
		assert.Zero(t, store.txCount)
	})
}
