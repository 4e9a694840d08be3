package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"slotfinder/internal/platform/metrics"
)

// Rejection reasons reported on the rejected counter
const (
	ReasonTimezone   = "timezone"
	ReasonRange      = "range"
	ReasonParameters = "parameters"
	ReasonBookings   = "bookings"
	ReasonCursor     = "cursor"
	ReasonDeadline   = "deadline"
)

// Recorder publishes search metrics; a nil *Recorder records nothing
type Recorder struct {
	duration prometheus.Histogram
	slots    prometheus.Histogram
	rejected *prometheus.CounterVec
}

// NewRecorder registers the search collectors on reg, nil reg yields a nil recorder
func NewRecorder(reg *metrics.Registry) *Recorder {
	if reg == nil {
		return nil
	}
	r := &Recorder{
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: reg.Namespace(),
			Subsystem: "slots",
			Name:      "search_duration_seconds",
			Help:      "Time spent resolving one slot search",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		slots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: reg.Namespace(),
			Subsystem: "slots",
			Name:      "search_slots",
			Help:      "Open slots found per search before paging",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: reg.Namespace(),
			Subsystem: "slots",
			Name:      "search_rejected_total",
			Help:      "Searches refused before running the engine",
		}, []string{"reason"}),
	}
	reg.MustRegister(r.duration, r.slots, r.rejected)
	return r
}

// ObserveSearch records a completed search
func (r *Recorder) ObserveSearch(d time.Duration, found int) {
	if r == nil {
		return
	}
	r.duration.Observe(d.Seconds())
	r.slots.Observe(float64(found))
}

// Reject counts a refused search
func (r *Recorder) Reject(reason string) {
	if r == nil {
		return
	}
	r.rejected.WithLabelValues(reason).Inc()
}
