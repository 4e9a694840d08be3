// Package time contains timezone and calendar helpers shared by services
package time

import (
	"strings"
	"time"
	_ "time/tzdata" // binaries carry their own zone database

	perr "slotfinder/internal/platform/errors"
)

// LoadLocation resolves an IANA zone name, falling back to def when name is blank
// unknown zones are reported as invalid arguments
func LoadLocation(name, def string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = def
	}
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "unknown timezone %q", name)
	}
	return loc, nil
}

// IsValidZone reports whether name resolves to a zone
func IsValidZone(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// DayStartIn returns a function mapping any instant to the first instant of its calendar day in loc
// that is local midnight, or the end of the DST gap on days whose midnight is skipped
func DayStartIn(loc *time.Location) func(time.Time) time.Time {
	return func(t time.Time) time.Time {
		y, m, d := t.In(loc).Date()
		return startOfDay(y, m, d, loc)
	}
}

func startOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	mid := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if my, mm, md := mid.Date(); my == y && mm == m && md == d {
		return mid
	}
	// time.Date may resolve a skipped midnight into the previous evening;
	// the day then begins where that zone period ends
	_, end := mid.ZoneBounds()
	if end.IsZero() {
		return mid
	}
	return end.In(loc)
}

// DaysSpanned counts the calendar days in loc touched by [start, end)
func DaysSpanned(start, end time.Time, loc *time.Location) int {
	if !end.After(start) {
		return 0
	}
	dayStart := DayStartIn(loc)
	first := dayStart(start)
	last := dayStart(end.Add(-time.Nanosecond))
	n := 1
	for d := first; d.Before(last); n++ {
		d = dayStart(d.Add(36 * time.Hour))
	}
	return n
}
