package shared

import (
	"context"
	"time"

	"event-booking-engine/internal/domain/availability"
	"event-booking-engine/internal/domain/event"

	"github.com/google/uuid"
)

// UnitOfWork runs command logic inside a transaction. Implementations retry
// serialization conflicts; the function must be safe to re-run.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads gives pool-bound read access for checks that do not need to sit
	// inside a write transaction (soft previews, list queries).
	Reads() CommandReads
}

// Tx is the repository surface bound to one open transaction.
type Tx interface {
	Events() EventRepository
	Availability() AvailabilityRepository
	Reads() CommandReads
	// LockSchedule acquires advisory transaction locks for the given keys,
	// sorted internally to keep lock order stable across callers. The locks
	// are released at commit/rollback. Blocks until acquired or ctx ends.
	LockSchedule(ctx context.Context, keys ...string) error
}

type EventRepository interface {
	Create(ctx context.Context, e *event.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	UpdateStatus(ctx context.Context, e *event.Event) error
	// ActiveOn lists submitted/approved events on one calendar date, every
	// location. Venue and resource conflict sets both derive from this
	// snapshot.
	ActiveOn(ctx context.Context, date time.Time) ([]*event.Event, error)
	// ApprovedEndedBefore lists approved events whose end instant is strictly
	// before cutoff. Used only by the auto-completion sweep.
	ApprovedEndedBefore(ctx context.Context, cutoff time.Time) ([]*event.Event, error)
}

type AvailabilityRepository interface {
	Upsert(ctx context.Context, rec *availability.Record) error
	Delete(ctx context.Context, department, requirementID string, date time.Time) error
	FindOne(ctx context.Context, department, requirementID string, date time.Time) (*availability.Record, error)
	ListRange(ctx context.Context, department string, from, to time.Time) ([]*availability.Record, error)
}

// CommandReads is read access shared by commands for validation.
type CommandReads interface {
	ActiveEventsOn(ctx context.Context, date time.Time) ([]*event.Event, error)
	AvailabilityOn(ctx context.Context, department, requirementID string, date time.Time) (*availability.Record, error)
}

// CatalogReads is the boundary to the external department/requirement
// catalog service. The engine never mutates catalogs.
type CatalogReads interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	DepartmentRequirements(ctx context.Context, department string) ([]CatalogRequirement, error)
}

type Department struct {
	ID   uuid.UUID
	Name string
}

// CatalogRequirement is one entry of a department's requirement catalog.
// DefaultQuantity is the capacity ceiling used when no per-date availability
// record overrides it.
type CatalogRequirement struct {
	ID              string
	Name            string
	Kind            event.RequirementKind
	DefaultQuantity int
}
