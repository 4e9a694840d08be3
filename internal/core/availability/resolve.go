package availability

import (
	"time"

	"slotfinder/internal/core/interval"
)

// DayBoundaryFunc maps an instant to the first instant of its local calendar day, normally midnight
// the returned time must carry the local location so its Weekday is the local day
type DayBoundaryFunc func(time.Time) time.Time

// Resolve expands rules into concrete intervals clipped to rng
// days are enumerated from the day holding rng.Start through the day holding rng.End inclusive,
// plus enough preceding days for the longest rule to spill into rng across midnight.
// Intervals are never truncated at day boundaries and the output is not normalized
func Resolve(rules []Rule, rng interval.Interval, dayStart DayBoundaryFunc) []interval.Interval {
	if len(rules) == 0 {
		return nil
	}

	first := dayStart(rng.Start)
	for spill := maxRuleDuration(rules); spill > 0; spill -= 24 * time.Hour {
		first = prevDay(first, dayStart)
	}
	last := dayStart(rng.End)

	var out []interval.Interval
	for day := first; !day.After(last); day = nextDay(day, dayStart) {
		wd := WeekdayOf(day)
		for _, r := range rules {
			if !r.OnDay(wd) {
				continue
			}
			for _, tod := range r.Times {
				// absolute offset from the day's first instant: on a spring forward day
				// 09:00 lands at 10:00 wall clock
				start := day.Add(tod.Offset())
				iv := interval.New(start, start.Add(r.Duration()))
				if clipped, ok := interval.Intersect(iv, rng); ok {
					out = append(out, clipped)
				}
			}
		}
	}
	return out
}

// nextDay steps past a 23 or 25 hour DST day and snaps back to midnight
func nextDay(day time.Time, dayStart DayBoundaryFunc) time.Time {
	return dayStart(day.Add(36 * time.Hour))
}

func prevDay(day time.Time, dayStart DayBoundaryFunc) time.Time {
	return dayStart(day.Add(-12 * time.Hour))
}
