package commands

import (
	"context"
	"fmt"
	"time"

	"event-booking-engine/internal/domain/allocation"
	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/pkg/clock"
	"event-booking-engine/internal/pkg/errs"
	"event-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVenueConflict           = errs.New("venue conflict")
	ErrResourceOverAllocation  = errs.New("resource over-allocation")
	ErrInvalidTimeWindow       = errs.New("invalid time window")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// VenueConflictDetail carries enough structure to render a precise rejection.
type VenueConflictDetail struct {
	Location          string   `json:"location"`
	Window            string   `json:"window"`
	ConflictingTitles []string `json:"conflictingEvents"`
}

func (d *VenueConflictDetail) Error() string {
	return fmt.Sprintf("venue %q is already booked during %s", d.Location, d.Window)
}

func (d *VenueConflictDetail) Unwrap() error { return ErrVenueConflict }

// OverAllocationDetail reports the failed requirement and the arithmetic
// behind the rejection.
type OverAllocationDetail struct {
	Requirement string             `json:"requirement"`
	Department  string             `json:"department"`
	Requested   int                `json:"requested"`
	Remaining   int                `json:"remaining"`
	Capacity    int                `json:"declaredCapacity"`
	Claims      []allocation.Claim `json:"-"`
}

func (d *OverAllocationDetail) Error() string {
	return fmt.Sprintf("requirement %q: requested %d but only %d remaining", d.Requirement, d.Requested, d.Remaining)
}

func (d *OverAllocationDetail) Unwrap() error { return ErrResourceOverAllocation }

type CreateEventParams struct {
	Title               string
	Location            string
	Date                time.Time
	Start               event.TimeOfDay
	End                 event.TimeOfDay
	Submit              bool
	RequesterDepartment string
	Requirements        map[string][]event.RequirementSelection
}

type CreateEventResult struct {
	EventID uuid.UUID
	Status  event.Status
}

type BookingCommands interface {
	CreateEvent(ctx context.Context, params CreateEventParams) (*CreateEventResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog shared.CatalogReads
	clock   clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, catalog shared.CatalogReads, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, catalog: catalog, clock: clock}
}

// CreateEvent validates the venue and every requested quantity inside one
// locked transaction, so two concurrent requests cannot both observe free
// capacity and both commit. The venue check is a hard stop; allocation checks
// run per requirement and report the first failure with full detail.
func (c *bookingCommandsImpl) CreateEvent(ctx context.Context, params CreateEventParams) (*CreateEventResult, error) {
	span, err := event.NewTimeSpan(params.Date, params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeWindow)
	}

	status := event.StatusDraft
	if params.Submit {
		status = event.StatusSubmitted
	}

	entity, err := event.NewEvent(
		params.Title,
		params.Location,
		span,
		status,
		params.RequesterDepartment,
		params.Requirements,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	capacities, err := c.resolveCapacities(ctx, params, span.DateOf())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockSchedule(ctx, scheduleLockKeys(params, span.DateOf())...); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		active, err := tx.Events().ActiveOn(ctx, span.DateOf())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if conflicts := event.VenueConflicts(span, params.Location, active); len(conflicts) > 0 {
			titles := make([]string, len(conflicts))
			for i, e := range conflicts {
				titles[i] = e.Title()
			}
			return &VenueConflictDetail{
				Location:          params.Location,
				Window:            span.String(),
				ConflictingTitles: titles,
			}
		}

		overlapping := event.OverlappingActive(span, active)
		for dept, sels := range params.Requirements {
			for _, sel := range sels {
				if !sel.ClaimsQuantity() || sel.Custom {
					continue
				}
				capacity := capacities[capacityKey(dept, sel.RequirementID)]
				claims := allocation.ClaimsAgainst(sel.Name, overlapping)
				consumed := 0
				for _, cl := range claims {
					consumed += cl.Quantity
				}
				remaining := allocation.Remaining(capacity, consumed)
				if sel.Quantity > remaining {
					return &OverAllocationDetail{
						Requirement: sel.Name,
						Department:  dept,
						Requested:   sel.Quantity,
						Remaining:   remaining,
						Capacity:    capacity,
						Claims:      claims,
					}
				}
			}
		}

		return tx.Events().Create(ctx, entity)
	})
	if err != nil {
		return nil, err
	}

	return &CreateEventResult{EventID: entity.ID(), Status: entity.Status()}, nil
}

// resolveCapacities looks up the declared capacity for every claimed catalog
// requirement before entering the write transaction: per-date availability
// record first, department catalog default as fallback. Custom requirements
// have no declared capacity and are not checked.
func (c *bookingCommandsImpl) resolveCapacities(ctx context.Context, params CreateEventParams, date time.Time) (map[string]int, error) {
	capacities := make(map[string]int)
	catalogCache := make(map[string]map[string]shared.CatalogRequirement)

	for dept, sels := range params.Requirements {
		for _, sel := range sels {
			if !sel.ClaimsQuantity() || sel.Custom {
				continue
			}

			rec, err := c.uow.Reads().AvailabilityOn(ctx, dept, sel.RequirementID, date)
			if err != nil {
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if rec != nil {
				capacities[capacityKey(dept, sel.RequirementID)] = rec.DeclaredCapacity()
				continue
			}

			byID, ok := catalogCache[dept]
			if !ok {
				reqs, err := c.catalog.DepartmentRequirements(ctx, dept)
				if err != nil {
					return nil, errs.Mark(err, ErrDatabaseOperationFailed)
				}
				byID = make(map[string]shared.CatalogRequirement, len(reqs))
				for _, r := range reqs {
					byID[r.ID] = r
				}
				catalogCache[dept] = byID
			}
			capacities[capacityKey(dept, sel.RequirementID)] = byID[sel.RequirementID].DefaultQuantity
		}
	}
	return capacities, nil
}

func capacityKey(department, requirementID string) string {
	return department + "\x00" + requirementID
}

// scheduleLockKeys produces the advisory lock keys guarding this booking:
// one for the venue's day, one per claimed requirement name and day.
func scheduleLockKeys(params CreateEventParams, date time.Time) []string {
	day := date.Format("2006-01-02")
	keys := []string{"venue:" + params.Location + ":" + day}
	seen := map[string]struct{}{}
	for _, sels := range params.Requirements {
		for _, sel := range sels {
			if !sel.ClaimsQuantity() {
				continue
			}
			key := "requirement:" + sel.Name + ":" + day
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}
