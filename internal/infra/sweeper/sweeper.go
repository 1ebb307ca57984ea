// Package sweeper runs the periodic auto-completion pass that moves approved
// events whose end time has passed into the completed status.
package sweeper

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"event-booking-engine/internal/usecase/commands"
)

type Sweeper struct {
	cmds     commands.SweepCommands
	interval time.Duration
}

func New(cmds commands.SweepCommands, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{cmds: cmds, interval: interval}
}

// Run polls until ctx is cancelled. The tick interval is re-jittered after
// every pass so replicas started together drift apart.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		s.sweep(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		ticker.Reset(time.Duration(float64(s.interval) * (0.9 + 0.2*rand.Float64())))
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if _, err := s.cmds.CompleteExpired(ctx); err != nil {
		slog.Error("auto-completion sweep failed", "error", err.Error())
	}
}
