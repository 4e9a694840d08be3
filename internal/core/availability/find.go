package availability

import (
	"time"

	"slotfinder/internal/core/interval"
)

// Find runs resolve, overlay and alignment over window
// the returned slots are buffer inclusive, expressed in loc and ordered by start.
// Candidates overlap each other whenever the duration exceeds the alignment step.
// window is usually SearchWindow(rng); the caller strips buffers with StripBuffers
func Find(p SchedulingParameters, window interval.Interval, loc *time.Location, dayStart DayBoundaryFunc, bookings []Booking) []interval.Interval {
	raw := Resolve(p.Rules, window, dayStart)
	net := ApplyBookings(raw, bookings, window)

	local := make([]interval.Interval, len(net))
	for i, iv := range net {
		local[i] = iv.In(loc)
	}
	return AlignAll(local, p.AlignmentSpec())
}
