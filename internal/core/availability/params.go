// Package availability turns weekly recurring rules and bookings into aligned open slots
// Every function here is pure; callers own timezone policy, validation and paging
package availability

import (
	"slices"
	"time"

	"slotfinder/internal/core/interval"
)

// Rule is one weekly availability pattern
// every time of day on every listed day opens DurationMinutes of availability
type Rule struct {
	Days            []Weekday
	Times           []TimeOfDay
	DurationMinutes int
}

// OnDay reports whether the rule applies to d
func (r Rule) OnDay(d Weekday) bool { return slices.Contains(r.Days, d) }

// Duration returns the rule duration as a time.Duration
func (r Rule) Duration() time.Duration { return minutes(r.DurationMinutes) }

// SchedulingParameters is the full contract for one resolution pass
type SchedulingParameters struct {
	Rules             []Rule
	DurationMinutes   int
	BufferBefore      int
	BufferAfter       int
	AlignmentInterval int
	AlignmentOffset   int
}

// AlignmentSpec is the buffer inclusive grid handed to FindAlignedSlots
type AlignmentSpec struct {
	DurationMinutes int
	Alignment       int
	OffsetMinutes   int
}

// AlignmentSpec derives the aligner input
// the duration includes both buffers and the grid is shifted back by the leading buffer
func (p SchedulingParameters) AlignmentSpec() AlignmentSpec {
	return AlignmentSpec{
		DurationMinutes: p.DurationMinutes + p.BufferBefore + p.BufferAfter,
		Alignment:       p.AlignmentInterval,
		OffsetMinutes:   p.AlignmentOffset - p.BufferBefore,
	}
}

// SearchWindow widens rng by the buffers so a slot starting at rng.Start
// can still carry its leading buffer
func (p SchedulingParameters) SearchWindow(rng interval.Interval) interval.Interval {
	return interval.New(
		rng.Start.Add(-minutes(p.BufferBefore)),
		rng.End.Add(minutes(p.BufferAfter)),
	)
}

// StripBuffers trims the buffers off a buffer inclusive slot
func (p SchedulingParameters) StripBuffers(slot interval.Interval) interval.Interval {
	return interval.New(
		slot.Start.Add(minutes(p.BufferBefore)),
		slot.End.Add(-minutes(p.BufferAfter)),
	)
}

// maxRuleDuration returns the longest rule duration, zero for no rules
func maxRuleDuration(rules []Rule) time.Duration {
	var longest time.Duration
	for _, r := range rules {
		if d := r.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

func minutes(n int) time.Duration { return time.Duration(n) * time.Minute }
