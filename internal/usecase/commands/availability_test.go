//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-booking-engine/internal/domain/availability"
	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/pkg/clock"
	"event-booking-engine/internal/usecase/commands"
	"event-booking-engine/internal/usecase/shared"
	"event-booking-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityFixture(store *fakeStore, now time.Time) commands.AvailabilityCommands {
	return newRetryingAvailabilityFixture(store, now, 0)
}

func newRetryingAvailabilityFixture(store *fakeStore, now time.Time, reruns int) commands.AvailabilityCommands {
	catalog := &fakeCatalog{requirements: map[string][]shared.CatalogRequirement{
		"AV": {{ID: "av-projector", Name: "Projector", Kind: event.KindPhysical, DefaultQuantity: 2}},
	}}
	uow := &fakeUoW{store: store, reruns: reruns}
	return commands.NewAvailabilityCommands(uow, catalog, clock.NewMockClock(now), discardLogger())
}

func TestUpsertAvailability(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stores the record", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAvailabilityFixture(store, now)

		err := cmds.UpsertAvailability(ctx, commands.UpsertAvailabilityParams{
			Department:      "AV",
			RequirementID:   "av-projector",
			RequirementName: "Projector",
			Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			Available:       true,
			Quantity:        4,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, store.upsertCount)
	})

	t.Run("rejects invalid records before touching storage", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAvailabilityFixture(store, now)

		err := cmds.UpsertAvailability(ctx, commands.UpsertAvailabilityParams{
			Department:    "AV",
			RequirementID: "av-projector",
			Quantity:      -1,
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Zero(t, store.upsertCount)
		assert.Zero(t, store.txCount)
	})
}

func TestBulkApply(t *testing.T) {
	ctx := context.Background()
	// Mid-September: only Sep 10 through Sep 30 are eligible.
	now := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("set available upserts every remaining date", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAvailabilityFixture(store, now)

		result, err := cmds.BulkApply(ctx, commands.BulkApplyParams{
			Department: "AV",
			Month:      month,
			Operation:  availability.OpSetAvailable,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 21, result.TotalDates)
		assert.Equal(t, 21, result.AffectedDates)
		assert.Equal(t, 21, result.UpsertedCount)
		assert.Empty(t, result.Failures)
		assert.Equal(t, 21, store.upsertCount)
	})

	t.Run("transaction retries do not inflate counts", func(t *testing.T) {
		store := newFakeStore()
		cmds := newRetryingAvailabilityFixture(store, now, 1)

		result, err := cmds.BulkApply(ctx, commands.BulkApplyParams{
			Department: "AV",
			Month:      month,
			Operation:  availability.OpSetAvailable,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 21, result.AffectedDates)
		assert.Equal(t, 21, result.UpsertedCount)
		assert.Zero(t, result.DeletedCount)
	})

	t.Run("reports progress as dates complete", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAvailabilityFixture(store, now)

		var calls []int
		_, err := cmds.BulkApply(ctx, commands.BulkApplyParams{
			Department: "AV",
			Month:      month,
			Operation:  availability.OpSetUnavailable,
		}, func(done, total int) {
			assert.Equal(t, 21, total)
			calls = append(calls, done)
		})
		require.NoError(t, err)
		require.Len(t, calls, 21)
		assert.Equal(t, 1, calls[0])
		assert.Equal(t, 21, calls[20])
	})

	t.Run("delete skips dates backing an active booking", func(t *testing.T) {
		store := newFakeStore()
		store.addAvailability(builder.NewAvailabilityBuilder().MustBuildDomain()) // Sep 14
		store.addEvent(builder.NewEventBuilder().MustBuildDomain())               // submitted on Sep 14
		cmds := newAvailabilityFixture(store, now)

		result, err := cmds.BulkApply(ctx, commands.BulkApplyParams{
			Department: "AV",
			Month:      month,
			Operation:  availability.OpDelete,
		}, nil)
		require.NoError(t, err)
		require.Len(t, result.ProtectedDates, 1)
		assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), result.ProtectedDates[0])
		assert.Len(t, store.avail, 1, "the protected record must survive")
		assert.Empty(t, result.Failures)
	})

	t.Run("a failing date is collected without stopping the run", func(t *testing.T) {
		store := newFakeStore()
		store.deleteErr["2026-09-12"] = errors.New("connection reset")
		cmds := newAvailabilityFixture(store, now)

		result, err := cmds.BulkApply(ctx, commands.BulkApplyParams{
			Department: "AV",
			Month:      month,
			Operation:  availability.OpDelete,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 20, result.AffectedDates)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), result.Failures[0].Date)
		assert.Contains(t, result.Failures[0].Err, "connection reset")
	})

	t.Run("unknown operation is rejected", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAvailabilityFixture(store, now)

		_, err := cmds.BulkApply(ctx, commands.BulkApplyParams{
			Department: "AV",
			Month:      month,
			Operation:  availability.BulkOperation("purge"),
		}, nil)
		assert.ErrorIs(t, err, commands.ErrInvalidBulkOperation)
		assert.Zero(t, store.txCount)
	})

	t.Run("department without catalog requirements is rejected", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAvailabilityFixture(store, now)

		_, err := cmds.BulkApply(ctx, commands.BulkApplyParams{
			Department: "Catering",
			Month:      month,
			Operation:  availability.OpSetAvailable,
		}, nil)
		assert.ErrorIs(t, err, commands.ErrNoRequirements)
	})
}
