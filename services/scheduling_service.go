package services

import (
	"time"

	"github.com/adamzur/lesson_tutor/models"
)

// Window is a half-open [start, end) interval within a single calendar
// date, minute resolution, teacher-local wall clock.
type Window struct {
	StartHour   int `json:"start_hour"`
	StartMinute int `json:"start_minute"`
	EndHour     int `json:"end_hour"`
	EndMinute   int `json:"end_minute"`
}

func (w Window) StartMinutes() int {
	return w.StartHour*60 + w.StartMinute
}

func (w Window) EndMinutes() int {
	return w.EndHour*60 + w.EndMinute
}

func (w Window) Valid() bool {
	if w.StartHour < 0 || w.StartHour > 23 || w.EndHour < 0 || w.EndHour > 23 {
		return false
	}
	if w.StartMinute < 0 || w.StartMinute > 59 || w.EndMinute < 0 || w.EndMinute > 59 {
		return false
	}
	return w.StartMinutes() < w.EndMinutes()
}

// ISOWeekday maps a date to ISO weekday numbering, Monday=1 .. Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// IsWindowCovered reports whether the window lies entirely inside a single
// declared range on the date's weekday. The window may not span two
// adjacent ranges, and an empty weekday fails closed. Boundary minutes
// count as covered: a range 09:00-12:00 covers the window 09:00-12:00.
func IsWindowCovered(ranges []models.AvailableHourRange, date time.Time, w Window) bool {
	weekday := ISOWeekday(date)

	for _, r := range ranges {
		if r.Weekday != weekday {
			continue
		}
		if r.FromMinutes() <= w.StartMinutes() && r.ToMinutes() >= w.EndMinutes() {
			return true
		}
	}
	return false
}

// Overlaps is the half-open interval test over minutes of day. Touching
// endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// StartInstant resolves a date plus window start to a wall-clock instant.
func StartInstant(date time.Time, w Window) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		w.StartHour, w.StartMinute, 0, 0, date.Location())
}
