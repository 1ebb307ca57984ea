package request

import (
	"errors"
	"time"

	"event-booking-engine/internal/domain/event"
)

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// ParseDate parses the calendar-date wire format used across the API.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

type CheckVenueRequest struct {
	Location  string `json:"location" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type CheckResourceRequest struct {
	RequirementName  string `json:"requirementName" binding:"required"`
	Date             string `json:"date" binding:"required"`
	StartTime        string `json:"startTime" binding:"required"`
	EndTime          string `json:"endTime" binding:"required"`
	DeclaredCapacity int    `json:"declaredCapacity" binding:"min=0"`
	Requested        int    `json:"requested" binding:"min=0"`
}

// Window parses the request's date and clock strings into domain values.
func (r CheckVenueRequest) Window() (time.Time, event.TimeOfDay, event.TimeOfDay, error) {
	return parseWindow(r.Date, r.StartTime, r.EndTime)
}

func (r CheckResourceRequest) Window() (time.Time, event.TimeOfDay, event.TimeOfDay, error) {
	return parseWindow(r.Date, r.StartTime, r.EndTime)
}

func parseWindow(date, start, end string) (time.Time, event.TimeOfDay, event.TimeOfDay, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, event.TimeOfDay{}, event.TimeOfDay{}, err
	}
	s, err := event.ParseTimeOfDay(start)
	if err != nil {
		return time.Time{}, event.TimeOfDay{}, event.TimeOfDay{}, err
	}
	e, err := event.ParseTimeOfDay(end)
	if err != nil {
		return time.Time{}, event.TimeOfDay{}, event.TimeOfDay{}, err
	}
	return day, s, e, nil
}
