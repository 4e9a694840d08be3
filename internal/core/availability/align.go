package availability

import (
	"fmt"
	"time"

	"slotfinder/internal/core/interval"
)

// Validate reports whether the spec can drive the aligner
func (s AlignmentSpec) Validate() error {
	if s.Alignment < 1 || s.Alignment > 60 {
		return fmt.Errorf("availability: alignment %d outside [1, 60]", s.Alignment)
	}
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("availability: duration %d must be positive", s.DurationMinutes)
	}
	return nil
}

// FindAlignedSlots emits fixed length slots inside iv whose starts sit on the alignment grid
// the minute of hour is read in the location carried by iv.Start. It panics on an invalid spec
func FindAlignedSlots(iv interval.Interval, spec AlignmentSpec) []interval.Interval {
	if err := spec.Validate(); err != nil {
		panic(err)
	}

	start := ceilMinute(iv.Start)
	if rem := mod(start.Minute()-spec.OffsetMinutes, spec.Alignment); rem != 0 {
		start = start.Add(minutes(spec.Alignment - rem))
	}

	length := minutes(spec.DurationMinutes)
	step := minutes(spec.Alignment)

	var out []interval.Interval
	for end := start.Add(length); !end.After(iv.End); end = start.Add(length) {
		out = append(out, interval.Interval{Start: start, End: end})
		start = start.Add(step)
	}
	return out
}

// AlignAll runs FindAlignedSlots over each interval in order
func AlignAll(in []interval.Interval, spec AlignmentSpec) []interval.Interval {
	var out []interval.Interval
	for _, iv := range in {
		out = append(out, FindAlignedSlots(iv, spec)...)
	}
	return out
}

// ceilMinute rounds t up to the next whole minute, leaving exact minutes alone
func ceilMinute(t time.Time) time.Time {
	tr := t.Truncate(time.Minute)
	if tr.Equal(t) {
		return t
	}
	return tr.Add(time.Minute)
}

// mod is the mathematical modulo, never negative for m > 0
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
