package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"sort"
	"time"

	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/infra/readstore"
	"event-booking-engine/internal/infra/repository"
	"event-booking-engine/internal/pkg/errs"
	"event-booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted is enough: check-and-commit races are excluded by the
// advisory schedule locks, not by the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return readstore.NewCommandReadStore(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx infra.DBTX

	// Lazy-initialized repositories
	eventRepo    shared.EventRepository
	availRepo    shared.AvailabilityRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Availability() shared.AvailabilityRepository {
	if t.availRepo == nil {
		t.availRepo = repository.NewAvailabilityRepository(t.dbtx)
	}
	return t.availRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = readstore.NewCommandReadStore(t.dbtx)
	}
	return t.commandReads
}

// LockSchedule serializes check-and-commit sections that contend on the same
// venue or requirement day. Keys are sorted so concurrent callers acquire in
// the same order, and hashtext collisions only cost spurious waits.
func (t *pgTx) LockSchedule(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	for _, key := range sorted {
		if _, err := t.dbtx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			return infra.WrapRepoErr("failed to acquire schedule lock", err)
		}
	}
	return nil
}
