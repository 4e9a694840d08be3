// Package metrics owns the process Prometheus registry and the HTTP instrumentation on top of it
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry wraps a private Prometheus registry plus the shared HTTP collectors
// a nil *Registry is valid and records nothing
type Registry struct {
	reg             *prometheus.Registry
	handler         http.Handler
	namespace       string
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

// New builds a registry with runtime collectors and request metrics under namespace
func New(namespace string) *Registry {
	reg := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	reg.MustRegister(
		requestDuration,
		requestTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		reg:             reg,
		handler:         promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		namespace:       namespace,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}
}

// Namespace returns the metric prefix given to New
func (r *Registry) Namespace() string {
	if r == nil {
		return ""
	}
	return r.namespace
}

// MustRegister adds module collectors; it panics on duplicate names
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	if r == nil {
		return
	}
	r.reg.MustRegister(cs...)
}

// Gatherer exposes the underlying registry for tests and exporters
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}

// Handler serves the exposition format, 503 when metrics are disabled
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return r.handler
}

// ObserveHTTPRequest records one finished request
func (r *Registry) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	s := strconv.Itoa(status)
	r.requestDuration.WithLabelValues(method, route, s).Observe(d.Seconds())
	r.requestTotal.WithLabelValues(method, route, s).Inc()
}

// Middleware times requests and labels them by chi route pattern so ids in paths do not explode cardinality
func (r *Registry) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if r == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			r.ObserveHTTPRequest(req.Method, routeOf(req), status, time.Since(start))
		})
	}
}

func routeOf(req *http.Request) string {
	if rc := chi.RouteContext(req.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
