package service

import (
	"fmt"
	"time"

	"slotfinder/internal/core/availability"
	"slotfinder/internal/core/interval"
	perr "slotfinder/internal/platform/errors"
	"slotfinder/internal/services/api/slots/domain"
)

func parseInstant(s, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "%s is not an RFC3339 instant", field), field)
	}
	return t, nil
}

// parseRange reads the search window; start must come strictly before end
func parseRange(in domain.TimeRange) (interval.Interval, error) {
	start, err := parseInstant(in.Start, "start")
	if err != nil {
		return interval.Interval{}, err
	}
	end, err := parseInstant(in.End, "end")
	if err != nil {
		return interval.Interval{}, err
	}
	if !end.After(start) {
		return interval.Interval{}, perr.WithField(perr.InvalidArgf("range start must be before end"), "range")
	}
	return interval.New(start, end), nil
}

// toParameters maps the wire contract onto core scheduling parameters
func toParameters(in domain.ParametersInput) (availability.SchedulingParameters, error) {
	rules := make([]availability.Rule, 0, len(in.Availability))
	for i, a := range in.Availability {
		if a.Duration <= 0 {
			return availability.SchedulingParameters{}, ruleErr(i, "duration", fmt.Errorf("must be positive"))
		}
		r := availability.Rule{DurationMinutes: a.Duration}
		for _, d := range a.DaysOfWeek {
			wd, err := availability.ParseWeekday(d)
			if err != nil {
				return availability.SchedulingParameters{}, ruleErr(i, "days_of_week", err)
			}
			r.Days = append(r.Days, wd)
		}
		for _, s := range a.AvailableTimes {
			tod, err := availability.ParseTimeOfDay(s)
			if err != nil {
				return availability.SchedulingParameters{}, ruleErr(i, "available_times", err)
			}
			r.Times = append(r.Times, tod)
		}
		rules = append(rules, r)
	}

	p := availability.SchedulingParameters{
		Rules:             rules,
		DurationMinutes:   in.Duration,
		BufferBefore:      in.BufferBefore,
		BufferAfter:       in.BufferAfter,
		AlignmentInterval: in.AlignmentInterval,
		AlignmentOffset:   in.AlignmentOffset,
	}
	if in.Duration <= 0 || in.BufferBefore < 0 || in.BufferAfter < 0 {
		return p, perr.WithField(perr.InvalidArgf("duration must be positive and buffers non negative"), "parameters")
	}
	if err := p.AlignmentSpec().Validate(); err != nil {
		return p, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid alignment"), "alignment_interval")
	}
	return p, nil
}

func ruleErr(i int, field string, err error) error {
	f := fmt.Sprintf("availability[%d].%s", i, field)
	return perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "%s is invalid", f), f)
}

// bookingStats summarizes the filter pass for logs
type bookingStats struct {
	free, busy, ignored, dropped int
}

// filterBookings keeps free and busy bookings that overlap window
// unknown statuses are ignored, empty or inverted ones and those outside window are dropped
func filterBookings(in []domain.BookingInput, window interval.Interval) ([]availability.Booking, bookingStats, error) {
	var (
		out   []availability.Booking
		stats bookingStats
	)
	for i, b := range in {
		status := availability.Status(b.Status)
		if !status.Adds() && !status.Blocks() {
			stats.ignored++
			continue
		}
		field := fmt.Sprintf("bookings[%d]", i)
		start, err := parseInstant(b.Start, field+".start")
		if err != nil {
			return nil, stats, err
		}
		end, err := parseInstant(b.End, field+".end")
		if err != nil {
			return nil, stats, err
		}
		if !end.After(start) {
			stats.dropped++
			continue
		}
		iv := interval.New(start, end)
		if !iv.Overlaps(window) {
			stats.dropped++
			continue
		}
		if status.Adds() {
			stats.free++
		} else {
			stats.busy++
		}
		out = append(out, availability.Booking{Interval: iv, Status: status})
	}
	return out, stats, nil
}
