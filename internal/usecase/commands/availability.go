package commands

import (
	"context"
	"log/slog"
	"time"

	"event-booking-engine/internal/domain/availability"
	"event-booking-engine/internal/pkg/clock"
	"event-booking-engine/internal/pkg/errs"
	"event-booking-engine/internal/usecase/shared"
)

var (
	ErrInvalidBulkOperation = errs.New("invalid bulk operation")
	ErrNoRequirements       = errs.New("department has no requirements")
)

type UpsertAvailabilityParams struct {
	Department      string
	RequirementID   string
	RequirementName string
	Date            time.Time
	Available       bool
	Quantity        int
	Notes           string
}

type BulkApplyParams struct {
	Department string
	// Month is any instant inside the target month.
	Month     time.Time
	Operation availability.BulkOperation
}

// ProgressFunc receives completion counts while a bulk run is in flight.
type ProgressFunc func(done, total int)

type AvailabilityCommands interface {
	UpsertAvailability(ctx context.Context, params UpsertAvailabilityParams) error
	BulkApply(ctx context.Context, params BulkApplyParams, progress ProgressFunc) (*availability.BulkResult, error)
}

type availabilityCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog shared.CatalogReads
	clock   clock.Clock
	logger  *slog.Logger
}

func NewAvailabilityCommands(uow shared.UnitOfWork, catalog shared.CatalogReads, clock clock.Clock, logger *slog.Logger) AvailabilityCommands {
	return &availabilityCommandsImpl{uow: uow, catalog: catalog, clock: clock, logger: logger}
}

func (c *availabilityCommandsImpl) UpsertAvailability(ctx context.Context, params UpsertAvailabilityParams) error {
	rec, err := availability.NewRecord(
		params.Department,
		params.RequirementID,
		params.RequirementName,
		params.Date,
		params.Available,
		params.Quantity,
		params.Notes,
	)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Availability().Upsert(ctx, rec)
	})
}

// BulkApply batch-applies one operation over every eligible date of the
// target month. Past dates are always excluded. Deletion skips dates where a
// submitted/approved event references one of the department's requirements,
// since availability backing a live booking must survive. Per-date failures are
// collected into the result; processing never stops early.
func (c *availabilityCommandsImpl) BulkApply(ctx context.Context, params BulkApplyParams, progress ProgressFunc) (*availability.BulkResult, error) {
	if !params.Operation.IsValid() {
		return nil, ErrInvalidBulkOperation
	}

	reqs, err := c.catalog.DepartmentRequirements(ctx, params.Department)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(reqs) == 0 {
		return nil, ErrNoRequirements
	}

	dates := availability.DatesForBulk(params.Month, c.clock.Now())
	result := &availability.BulkResult{
		Operation:  params.Operation,
		TotalDates: len(dates),
	}

	for i, date := range dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := c.applyToDate(ctx, params, reqs, date)
		if err != nil {
			c.logger.Warn("bulk availability date failed",
				"department", params.Department,
				"date", date.Format("2006-01-02"),
				"operation", params.Operation.String(),
				"error", err.Error())
			result.Failures = append(result.Failures, availability.DateFailure{
				Date: date,
				Err:  err.Error(),
			})
		} else {
			result.AffectedDates++
			result.UpsertedCount += out.upserted
			result.DeletedCount += out.deleted
			if out.protected {
				result.ProtectedDates = append(result.ProtectedDates, date)
			}
		}

		if progress != nil {
			progress(i+1, len(dates))
		}
	}

	return result, nil
}

// dateOutcome counts one date's committed writes. Counts accumulate in a
// local so a transaction retry never double-counts and a rolled-back date
// contributes nothing.
type dateOutcome struct {
	upserted  int
	deleted   int
	protected bool
}

// applyToDate runs one date in its own transaction so a failure stays
// contained to that date.
func (c *availabilityCommandsImpl) applyToDate(
	ctx context.Context,
	params BulkApplyParams,
	reqs []shared.CatalogRequirement,
	date time.Time,
) (dateOutcome, error) {
	var out dateOutcome
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The unit of work re-runs the closure on serialization failures.
		out = dateOutcome{}

		if params.Operation == availability.OpDelete {
			protected, err := c.dateHasActiveBooking(ctx, tx, params.Department, date)
			if err != nil {
				return err
			}
			if protected {
				out.protected = true
				return nil
			}
			for _, req := range reqs {
				if err := tx.Availability().Delete(ctx, params.Department, req.ID, date); err != nil {
					return err
				}
				out.deleted++
			}
			return nil
		}

		avail := params.Operation == availability.OpSetAvailable
		for _, req := range reqs {
			rec, err := availability.NewRecord(
				params.Department,
				req.ID,
				req.Name,
				date,
				avail,
				req.DefaultQuantity,
				"",
			)
			if err != nil {
				return err
			}
			if err := tx.Availability().Upsert(ctx, rec); err != nil {
				return err
			}
			out.upserted++
		}
		return nil
	})
	if err != nil {
		return dateOutcome{}, err
	}
	return out, nil
}

// dateHasActiveBooking reports whether any submitted/approved event on the
// date carries a selected requirement supplied by the department.
func (c *availabilityCommandsImpl) dateHasActiveBooking(ctx context.Context, tx shared.Tx, department string, date time.Time) (bool, error) {
	active, err := tx.Events().ActiveOn(ctx, date)
	if err != nil {
		return false, err
	}
	for _, e := range active {
		for _, sel := range e.Requirements(department) {
			if sel.Selected {
				return true, nil
			}
		}
	}
	return false, nil
}
