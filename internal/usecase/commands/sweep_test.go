//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/pkg/clock"
	"event-booking-engine/internal/usecase/commands"
	"event-booking-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func approvedEvent(t *testing.T, mutate func(*builder.EventBuilder)) *event.Event {
	t.Helper()
	b := builder.NewEventBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	e := b.MustBuildDomain()
	require.NoError(t, e.TransitionTo(event.StatusApproved, nil, e.CreatedAt()))
	return e
}

func TestCompleteExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("completes approved events past their end instant", func(t *testing.T) {
		store := newFakeStore()
		expired := approvedEvent(t, func(b *builder.EventBuilder) {
			b.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		})
		future := approvedEvent(t, func(b *builder.EventBuilder) {
			b.Location = "Gym"
			b.Date = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
		})
		store.addEvent(expired)
		store.addEvent(future)

		now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
		cmds := commands.NewSweepCommands(&fakeUoW{store: store}, clock.NewMockClock(now), discardLogger())

		completed, err := cmds.CompleteExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, completed)
		assert.Equal(t, 1, store.updateCount)
		assert.Equal(t, event.StatusCompleted, store.events[expired.ID()].Status())
		assert.Equal(t, event.StatusApproved, store.events[future.ID()].Status())
	})

	t.Run("writes nothing when no event has expired", func(t *testing.T) {
		store := newFakeStore()
		store.addEvent(approvedEvent(t, func(b *builder.EventBuilder) {
			b.Date = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
		}))
		store.addEvent(builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.Location = "Gym"
			b.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		}).MustBuildDomain()) // submitted, never swept

		now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
		cmds := commands.NewSweepCommands(&fakeUoW{store: store}, clock.NewMockClock(now), discardLogger())

		completed, err := cmds.CompleteExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, completed)
		assert.Zero(t, store.updateCount)
	})

	t.Run("event ending exactly now is not yet expired", func(t *testing.T) {
		store := newFakeStore()
		store.addEvent(approvedEvent(t, nil))

		// Default window ends 11:00 on Sep 14.
		now := time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC)
		cmds := commands.NewSweepCommands(&fakeUoW{store: store}, clock.NewMockClock(now), discardLogger())

		completed, err := cmds.CompleteExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, completed)
	})
}
