// Package interval provides the half-open time interval algebra used by availability resolution
package interval

import (
	"fmt"
	"slices"
	"time"
)

// Interval is a half-open range [Start, End) of absolute instants
// Start is always strictly before End
type Interval struct {
	Start time.Time
	End   time.Time
}

// New returns [start, end) and panics when end is not after start
// a zero or negative length interval is a configuration bug upstream, not a runtime condition
func New(start, end time.Time) Interval {
	if !end.After(start) {
		panic(fmt.Sprintf("interval: end %s is not after start %s",
			end.Format(time.RFC3339Nano), start.Format(time.RFC3339Nano)))
	}
	return Interval{Start: start, End: end}
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration { return i.End.Sub(i.Start) }

// Overlaps reports whether i and o share at least one instant
// touching endpoints do not overlap
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Touches reports whether i and o overlap or meet end to start
func (i Interval) Touches(o Interval) bool {
	return !i.Start.After(o.End) && !o.Start.After(i.End)
}

// Contains reports whether t falls inside [Start, End)
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// In returns i with both bounds expressed in loc
func (i Interval) In(loc *time.Location) Interval {
	return Interval{Start: i.Start.In(loc), End: i.End.In(loc)}
}

// String renders the interval as RFC3339 bounds
func (i Interval) String() string {
	return "[" + i.Start.Format(time.RFC3339) + ", " + i.End.Format(time.RFC3339) + ")"
}

// Intersect returns the overlap of a and b
// ok is false when they only touch or are disjoint
func Intersect(a, b Interval) (Interval, bool) {
	if !a.Overlaps(b) {
		return Interval{}, false
	}
	return Interval{Start: latest(a.Start, b.Start), End: earliest(a.End, b.End)}, true
}

// Merge returns the union of a and b when they overlap or are adjacent
// touching intervals fuse so no zero-width gap survives
func Merge(a, b Interval) (Interval, bool) {
	if !a.Touches(b) {
		return Interval{}, false
	}
	return Interval{Start: earliest(a.Start, b.Start), End: latest(a.End, b.End)}, true
}

// Normalize sorts by start and fuses overlapping or touching intervals
// the input slice is not modified
func Normalize(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}
	sorted := slices.Clone(in)
	slices.SortStableFunc(sorted, func(a, b Interval) int { return a.Start.Compare(b.Start) })

	out := make([]Interval, 0, len(sorted))
	out = append(out, sorted[0])
	for _, cur := range sorted[1:] {
		last := len(out) - 1
		if merged, ok := Merge(out[last], cur); ok {
			out[last] = merged
			continue
		}
		out = append(out, cur)
	}
	return out
}

// Subtract removes every blocked interval from available in one forward sweep
// both inputs must already be normalized, neither is sorted or merged here
func Subtract(available, blocked []Interval) []Interval {
	out := make([]Interval, 0, len(available))
	j := 0
	for _, a := range available {
		cur := a.Start

		// blocks ending at or before the current start can never matter again
		for j < len(blocked) && !blocked[j].End.After(cur) {
			j++
		}

		k := j
		for k < len(blocked) && blocked[k].Start.Before(a.End) {
			b := blocked[k]
			if b.Start.After(cur) {
				out = append(out, Interval{Start: cur, End: b.Start})
			}
			if b.End.After(cur) {
				cur = b.End
			}
			if !cur.Before(a.End) {
				break
			}
			k++
		}

		if cur.Before(a.End) {
			out = append(out, Interval{Start: cur, End: a.End})
		}
	}
	return out
}

// Clip intersects every interval with window and drops those left empty
func Clip(in []Interval, window Interval) []Interval {
	out := make([]Interval, 0, len(in))
	for _, iv := range in {
		if c, ok := Intersect(iv, window); ok {
			out = append(out, c)
		}
	}
	return out
}

func earliest(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
