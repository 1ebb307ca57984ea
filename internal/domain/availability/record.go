package availability

import (
	"errors"
	"time"

	"event-booking-engine/internal/domain/event"
)

var (
	ErrEmptyDepartment  = errors.New("department is required")
	ErrEmptyRequirement = errors.New("requirement is required")
	ErrNegativeQuantity = errors.New("declared quantity cannot be negative")
)

// Record is one department's declaration, for one calendar date, of how much
// of one requirement it can supply. There is at most one record per
// (department, requirement, date); writes upsert on that key.
type Record struct {
	department      string
	requirementID   string
	requirementName string
	date            time.Time
	available       bool
	quantity        int
	notes           string
}

func NewRecord(department, requirementID, requirementName string, date time.Time, available bool, quantity int, notes string) (*Record, error) {
	if department == "" {
		return nil, ErrEmptyDepartment
	}
	if requirementID == "" || requirementName == "" {
		return nil, ErrEmptyRequirement
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return &Record{
		department:      department,
		requirementID:   requirementID,
		requirementName: requirementName,
		date:            event.Date(date),
		available:       available,
		quantity:        quantity,
		notes:           notes,
	}, nil
}

// ReconstructRecord rebuilds a record from storage without validation.
func ReconstructRecord(department, requirementID, requirementName string, date time.Time, available bool, quantity int, notes string) *Record {
	return &Record{
		department:      department,
		requirementID:   requirementID,
		requirementName: requirementName,
		date:            event.Date(date),
		available:       available,
		quantity:        quantity,
		notes:           notes,
	}
}

func (r *Record) Department() string      { return r.department }
func (r *Record) RequirementID() string   { return r.requirementID }
func (r *Record) RequirementName() string { return r.requirementName }
func (r *Record) DateOf() time.Time       { return r.date }
func (r *Record) Available() bool         { return r.available }
func (r *Record) Quantity() int           { return r.quantity }
func (r *Record) Notes() string           { return r.notes }

// DeclaredCapacity is the usable capacity ceiling of the record: an
// unavailable date supplies nothing regardless of its stored quantity.
func (r *Record) DeclaredCapacity() int {
	if !r.available {
		return 0
	}
	return r.quantity
}
