package availability

import (
	"slices"
	"testing"
	"time"
	_ "time/tzdata"

	"slotfinder/internal/core/interval"
	ptime "slotfinder/internal/platform/time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return loc
}

// dayStartIn is the day boundary the slot service injects
func dayStartIn(loc *time.Location) DayBoundaryFunc { return ptime.DayStartIn(loc) }

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func span(t *testing.T, from, to string) interval.Interval {
	t.Helper()
	return interval.New(ts(t, from), ts(t, to))
}

func local(loc *time.Location, y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, loc)
}

func sameIntervals(a, b []interval.Interval) bool {
	return slices.EqualFunc(a, b, func(x, y interval.Interval) bool {
		return x.Start.Equal(y.Start) && x.End.Equal(y.End)
	})
}
