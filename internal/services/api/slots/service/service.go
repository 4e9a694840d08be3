// Package service contains the slot search workflow
package service

import (
	"context"
	"time"

	"slotfinder/internal/core/availability"
	"slotfinder/internal/core/interval"
	perr "slotfinder/internal/platform/errors"
	"slotfinder/internal/platform/logger"
	ptime "slotfinder/internal/platform/time"
	"slotfinder/internal/services/api/slots/domain"
)

// Service defines the slot search contract
type Service interface {
	domain.ServicePort
}

// Svc implements the slot search service
type Svc struct {
	limits domain.Limits
	rec    *Recorder
	now    func() time.Time
}

// New constructs a slot search service; zero limits fall back to defaults
func New(limits domain.Limits, rec *Recorder, now func() time.Time) *Svc {
	if now == nil {
		now = time.Now
	}
	return &Svc{limits: withDefaults(limits), rec: rec, now: now}
}

// DefaultLimits are used for any zero field in the configured limits
func DefaultLimits() domain.Limits {
	return domain.Limits{
		MaxRangeDays:    62,
		MaxBookings:     5000,
		MaxPageSize:     500,
		DefaultPageSize: 100,
		DefaultTimezone: "UTC",
	}
}

func withDefaults(l domain.Limits) domain.Limits {
	d := DefaultLimits()
	if l.MaxRangeDays <= 0 {
		l.MaxRangeDays = d.MaxRangeDays
	}
	if l.MaxBookings <= 0 {
		l.MaxBookings = d.MaxBookings
	}
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = d.MaxPageSize
	}
	if l.DefaultPageSize <= 0 {
		l.DefaultPageSize = d.DefaultPageSize
	}
	l.DefaultPageSize = min(l.DefaultPageSize, l.MaxPageSize)
	if l.DefaultTimezone == "" {
		l.DefaultTimezone = d.DefaultTimezone
	}
	return l
}

// Limits returns the effective guard rails
func (s *Svc) Limits() domain.Limits { return s.limits }

// Search resolves open slots for one request
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchOutput, error) {
	began := s.now()
	log := logger.C(ctx).With().Str("component", "slots").Logger()

	loc, err := ptime.LoadLocation(in.Timezone, s.limits.DefaultTimezone)
	if err != nil {
		return s.reject(ReasonTimezone, perr.WithField(err, "timezone"))
	}
	zone := loc.String()

	rng, err := parseRange(in.Range)
	if err != nil {
		return s.reject(ReasonRange, err)
	}
	if days := ptime.DaysSpanned(rng.Start, rng.End, loc); days > s.limits.MaxRangeDays {
		return s.reject(ReasonRange, perr.WithField(
			perr.InvalidArgf("range spans %d days, at most %d allowed", days, s.limits.MaxRangeDays), "range"))
	}

	params, err := toParameters(in.Parameters)
	if err != nil {
		return s.reject(ReasonParameters, err)
	}

	var after time.Time
	if in.After != "" {
		if after, err = parseInstant(in.After, "after"); err != nil {
			return s.reject(ReasonCursor, err)
		}
	}

	window := params.SearchWindow(rng)
	bookings, bstats, err := filterBookings(in.Bookings, window)
	if err != nil {
		return s.reject(ReasonBookings, err)
	}
	if len(bookings) > s.limits.MaxBookings {
		return s.reject(ReasonBookings, perr.WithField(
			perr.InvalidArgf("too many bookings: %d relevant, at most %d allowed", len(bookings), s.limits.MaxBookings), "bookings"))
	}

	if err := ctx.Err(); err != nil {
		return s.reject(ReasonDeadline, perr.Wrap(err, perr.ErrorCodeTimeout, "search abandoned"))
	}

	found := availability.Find(params, window, loc, ptime.DayStartIn(loc), bookings)
	slots := make([]interval.Interval, 0, len(found))
	for _, f := range found {
		slots = append(slots, params.StripBuffers(f))
	}

	limit := in.Limit
	if limit <= 0 {
		limit = s.limits.DefaultPageSize
	}
	limit = min(limit, s.limits.MaxPageSize)

	page, next, more := paginate(slots, after, limit)
	out := domain.SearchOutput{
		Timezone: zone,
		Items:    toRows(zone, loc, page),
		Page:     domain.PageInfo{Total: len(slots), PageSize: limit},
	}
	if more {
		out.Page.Cursor = next.In(loc).Format(time.RFC3339)
	}

	elapsed := s.now().Sub(began)
	s.rec.ObserveSearch(elapsed, len(slots))
	log.Debug().
		Str("timezone", zone).
		Int("rules", len(params.Rules)).
		Int("bookings_free", bstats.free).
		Int("bookings_busy", bstats.busy).
		Int("bookings_ignored", bstats.ignored).
		Int("bookings_dropped", bstats.dropped).
		Int("slots", len(slots)).
		Int("returned", len(page)).
		Dur("elapsed", elapsed).
		Msg("slot search")

	return out, nil
}

func (s *Svc) reject(reason string, err error) (domain.SearchOutput, error) {
	s.rec.Reject(reason)
	return domain.SearchOutput{}, err
}
