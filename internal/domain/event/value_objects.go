package event

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrOffSlotGrid      = errors.New("time is not on the 30-minute grid")
	ErrEndNotAfterStart = errors.New("end time must be after start time")
)

// SlotGridMinutes is the scheduling granularity for start/end times.
const SlotGridMinutes = 30

// TimeOfDay is a wall-clock time within a day, held as minutes since midnight.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// TimeOfDayFromMinutes rebuilds a value from storage.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= 24*60 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// OnGrid reports whether the time falls on a 30-minute boundary.
func (t TimeOfDay) OnGrid() bool {
	return t.minutes%SlotGridMinutes == 0
}

// Date normalizes t to a calendar date (midnight UTC). All span comparisons
// operate on normalized dates.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeSpan is a same-day time window. Multi-day events are represented as a
// sequence of same-day spans, one per covered date.
type TimeSpan struct {
	date  time.Time
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSpan(date time.Time, start, end TimeOfDay) (TimeSpan, error) {
	if !start.Before(end) {
		return TimeSpan{}, ErrEndNotAfterStart
	}
	if !start.OnGrid() || !end.OnGrid() {
		return TimeSpan{}, ErrOffSlotGrid
	}
	return TimeSpan{date: Date(date), start: start, end: end}, nil
}

func (s TimeSpan) DateOf() time.Time { return s.date }
func (s TimeSpan) Start() TimeOfDay  { return s.start }
func (s TimeSpan) End() TimeOfDay    { return s.end }

// Overlaps reports whether two spans share at least one instant. Spans on
// different dates never overlap. The comparison is half-open: a span ending
// exactly when another starts does not conflict. See BlocksSlot for the
// deliberately stricter boundary rule used for slot enumeration.
func (s TimeSpan) Overlaps(other TimeSpan) bool {
	if !s.date.Equal(other.date) {
		return false
	}
	return s.start.Minutes() < other.end.Minutes() && other.start.Minutes() < s.end.Minutes()
}

// BlocksSlot reports whether a candidate slot instant falls inside the span,
// boundaries included. This is intentionally stricter than Overlaps: a slot
// coinciding with an existing event's exact start or end is still shown as
// blocked when enumerating selectable times, so back-to-back bookings cannot
// be picked from the slot grid even though Overlaps would allow them.
func (s TimeSpan) BlocksSlot(slot TimeOfDay) bool {
	return slot.Minutes() >= s.start.Minutes() && slot.Minutes() <= s.end.Minutes()
}

// EndInstant is the absolute end of the span, used by the auto-completion
// sweep to decide expiry.
func (s TimeSpan) EndInstant() time.Time {
	return s.date.Add(time.Duration(s.end.Minutes()) * time.Minute)
}

func (s TimeSpan) String() string {
	return fmt.Sprintf("%s %s-%s", s.date.Format("2006-01-02"), s.start, s.end)
}

// SlotGrid enumerates every slot instant of a day at 30-minute granularity,
// 00:00 through 23:30.
func SlotGrid() []TimeOfDay {
	slots := make([]TimeOfDay, 0, 24*60/SlotGridMinutes)
	for m := 0; m < 24*60; m += SlotGridMinutes {
		slots = append(slots, TimeOfDay{minutes: m})
	}
	return slots
}
