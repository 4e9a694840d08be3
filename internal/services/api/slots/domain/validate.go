package domain

import (
	"sync"

	"slotfinder/internal/core/availability"
	"slotfinder/internal/platform/net/http/bind"
	ptime "slotfinder/internal/platform/time"
)

var registerOnce sync.Once

// RegisterValidators installs the weekday, timeofday and timezone tags used by the DTOs
// safe to call from every constructor
func RegisterValidators() {
	registerOnce.Do(func() {
		must(bind.RegisterTag("weekday", func(fl bind.FieldLevel) bool {
			_, err := availability.ParseWeekday(fl.Field().String())
			return err == nil
		}, "{0} must be a day of week such as mon or monday"))

		must(bind.RegisterTag("timeofday", func(fl bind.FieldLevel) bool {
			_, err := availability.ParseTimeOfDay(fl.Field().String())
			return err == nil
		}, "{0} must be a time of day formatted HH:MM:SS"))

		must(bind.RegisterTag("timezone", func(fl bind.FieldLevel) bool {
			return ptime.IsValidZone(fl.Field().String())
		}, "{0} must be an IANA timezone name"))
	})
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
