package availability

import (
	"errors"
	"time"

	"event-booking-engine/internal/domain/event"
)

var ErrUnknownOperation = errors.New("unknown bulk operation")

// BulkOperation is a whole-month mutation of a department's availability
// calendar.
type BulkOperation string

const (
	OpSetAvailable   BulkOperation = "setAvailable"
	OpSetUnavailable BulkOperation = "setUnavailable"
	OpDelete         BulkOperation = "delete"
)

func (op BulkOperation) String() string {
	return string(op)
}

func (op BulkOperation) IsValid() bool {
	switch op {
	case OpSetAvailable, OpSetUnavailable, OpDelete:
		return true
	default:
		return false
	}
}

// DatesForBulk enumerates the calendar dates of the month containing anchor
// that are eligible for bulk mutation: today or later, never past dates.
// An anchor month entirely in the past yields nothing.
func DatesForBulk(anchor, now time.Time) []time.Time {
	today := event.Date(now)
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if d.Before(today) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// DateFailure records a per-date bulk error; one failed date never aborts
// the rest of the batch.
type DateFailure struct {
	Date time.Time `json:"date"`
	Err  string    `json:"error"`
}

// BulkResult summarizes one BulkApply run.
type BulkResult struct {
	Operation      BulkOperation `json:"operation"`
	TotalDates     int           `json:"totalDates"`
	AffectedDates  int           `json:"affectedDates"`
	UpsertedCount  int           `json:"upsertedCount"`
	DeletedCount   int           `json:"deletedCount"`
	ProtectedDates []time.Time   `json:"protectedDates,omitempty"`
	Failures       []DateFailure `json:"failures,omitempty"`
}
