package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"slotfinder/internal/platform/metrics"
	"slotfinder/internal/platform/net/middleware"
)

// StackOptions tunes the shared API middleware stack
type StackOptions struct {
	// Timeout cancels the request context, 0 means 30s
	Timeout time.Duration
	// Slow marks access log lines at warn level, 0 disables it
	Slow time.Duration
	// CORSOrigins may call the API from a browser
	CORSOrigins []string
	// Metrics records request counts and latency per route when set
	Metrics *metrics.Registry
	// MaxInFlight caps concurrent requests, excess get 429; 0 means unlimited
	MaxInFlight int
}

// Stack returns the /api/v1 middleware slice, outermost first
func Stack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestContext(),
		middleware.Recover,
		middleware.NoCache(),
		middleware.AccessLog(o.Slow),
	}
	if o.Metrics != nil {
		stack = append(stack, o.Metrics.Middleware())
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return append(stack,
		middleware.CORS(o.CORSOrigins),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	)
}
