package modkit

import (
	"time"

	"slotfinder/internal/platform/config"
	"slotfinder/internal/platform/metrics"
)

// Deps are the shared dependencies every module is built from
// the zero value works: a nil Metrics records nothing and a nil Now is time.Now
type Deps struct {
	Cfg     config.Conf
	Metrics *metrics.Registry
	Now     func() time.Time
}

// Clock returns Now or time.Now when unset
func (d Deps) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}
