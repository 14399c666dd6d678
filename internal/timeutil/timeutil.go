// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"context"
	"math"
	"time"
)

const (
	secondsInAMinute = 60
	daysInAWeek      = 7
)

// DayLayout is the layout used to record the calendar day an objective was
// completed on.
const DayLayout = "2006-01-02"

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds. Partial
// seconds are rounded up so that a countdown never shows 00:00 before it ends.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := int(math.Ceil(val))
	if total < 0 {
		total = 0
	}

	return total / secondsInAMinute, total % secondsInAMinute
}

// DayKey returns the calendar day of t in DayLayout.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Weekday converts a Sunday-first weekday into a Monday-first index, so that
// Monday is 0 and Sunday is 6.
func Weekday(d time.Weekday) int {
	return (int(d) + daysInAWeek - 1) % daysInAWeek
}

// NextAt returns the first instant strictly after now whose wall clock reads
// hour:minute in now's location.
func NextAt(now time.Time, hour, minute int) time.Time {
	next := time.Date(
		now.Year(),
		now.Month(),
		now.Day(),
		hour,
		minute,
		0,
		0,
		now.Location(),
	)

	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// Sleep pauses for d or until ctx is done, whichever comes first. It returns
// the context error if ctx ended the wait.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
