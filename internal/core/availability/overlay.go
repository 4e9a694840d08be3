package availability

import (
	"slotfinder/internal/core/interval"
)

// Status tags a pre-existing booking
type Status string

// Booking statuses understood by ApplyBookings
const (
	StatusFree            Status = "free"
	StatusBusy            Status = "busy"
	StatusBusyUnavailable Status = "busy-unavailable"
)

// Adds reports whether the status opens availability
func (s Status) Adds() bool { return s == StatusFree }

// Blocks reports whether the status removes availability
func (s Status) Blocks() bool { return s == StatusBusy || s == StatusBusyUnavailable }

// Booking is an interval tagged with a status
type Booking struct {
	Interval interval.Interval
	Status   Status
}

// ApplyBookings folds bookings into resolved availability
// free bookings are clipped to rng and unioned in, busy ones are subtracted.
// Bookings with any other status are ignored
func ApplyBookings(availability []interval.Interval, bookings []Booking, rng interval.Interval) []interval.Interval {
	var free, busy []interval.Interval
	for _, b := range bookings {
		iv := interval.New(b.Interval.Start, b.Interval.End)
		switch {
		case b.Status.Adds():
			if clipped, ok := interval.Intersect(iv, rng); ok {
				free = append(free, clipped)
			}
		case b.Status.Blocks():
			busy = append(busy, iv)
		}
	}

	union := make([]interval.Interval, 0, len(availability)+len(free))
	union = append(union, availability...)
	union = append(union, free...)

	return interval.Subtract(interval.Normalize(union), interval.Normalize(busy))
}
