package module

import (
	"slotfinder/internal/platform/config"
	"slotfinder/internal/services/api/slots/domain"
	svc "slotfinder/internal/services/api/slots/service"
)

// Options controls slot search guard rails
type Options struct {
	Limits domain.Limits
}

// FromConfig reads SLOTS_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("SLOTS_")
	d := svc.DefaultLimits()
	return Options{Limits: domain.Limits{
		MaxRangeDays:    sc.MayInt("MAX_RANGE_DAYS", d.MaxRangeDays),
		MaxBookings:     sc.MayInt("MAX_BOOKINGS", d.MaxBookings),
		MaxPageSize:     sc.MayInt("MAX_PAGE_SIZE", d.MaxPageSize),
		DefaultPageSize: sc.MayInt("DEFAULT_PAGE_SIZE", d.DefaultPageSize),
		DefaultTimezone: sc.MayString("DEFAULT_TIMEZONE", d.DefaultTimezone),
	}}
}
