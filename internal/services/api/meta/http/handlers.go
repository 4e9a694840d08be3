// Package http serves service metadata: liveness, readiness, build and engine revision
package http

import (
	"context"
	"net/http"
	"time"

	"slotfinder/internal/core/version"
	"slotfinder/internal/modkit/httpkit"
)

// readyTimeout bounds all readiness checks of one request together
const readyTimeout = 2 * time.Second

// Checker reports whether one dependency can serve traffic
type Checker interface {
	Check(ctx context.Context) error
}

// CheckFunc adapts a plain function to Checker
type CheckFunc func(context.Context) error

// Check calls f
func (f CheckFunc) Check(ctx context.Context) error { return f(ctx) }

// Check is a named readiness check; a nil Run is reported as skipped
type Check struct {
	Name string
	Run  Checker
}

// Deps are what the meta handlers read
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Now         func() time.Time
	Checks      []Check
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"slotfinder-api"`
	Started string `json:"started" example:"2025-12-01T13:00:00Z"`
	Now     string `json:"now"     example:"2025-12-01T13:05:00Z"`
}

// ReadyCheck is the outcome of one check: ok, fail or skipped
type ReadyCheck struct {
	Name   string `json:"name"            example:"slots"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"canary search returned unexpected slots"`
}

// ReadyResponse is fail when any check failed
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-12-01T13:05:00Z"`
}

// ServiceResponse reports uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"slotfinder-api"`
	Started string `json:"started" example:"2025-12-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// EngineResponse reports the slot engine revision next to the build
type EngineResponse struct {
	EngineVersion int               `json:"engine_version" example:"1"`
	Build         version.BuildInfo `json:"build"`
}

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	stamp := func(t time.Time) string { return t.UTC().Format(time.RFC3339) }

	// @Summary Health check
	// @Tags Meta
	// @Success 200 {object} HealthResponse
	// @Router /meta/health [get]
	httpkit.Get(r, "/health", func(*http.Request) (any, error) {
		return HealthResponse{OK: true, Service: d.ServiceName, Started: stamp(d.StartedAt), Now: stamp(d.Now())}, nil
	})

	// @Summary Readiness with dependency checks
	// @Tags Meta
	// @Success 200 {object} ReadyResponse
	// @Router /meta/ready [get]
	httpkit.Get(r, "/ready", func(req *http.Request) (any, error) {
		ctx, cancel := context.WithTimeout(req.Context(), readyTimeout)
		defer cancel()
		out := runChecks(ctx, d.Checks)
		out.Now = stamp(d.Now())
		return out, nil
	})

	// @Summary Build and version info
	// @Tags Meta
	// @Success 200 {object} version.BuildInfo
	// @Router /meta/version [get]
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })

	// @Summary Service info and uptime
	// @Tags Meta
	// @Success 200 {object} ServiceResponse
	// @Router /meta/service [get]
	httpkit.Get(r, "/service", func(*http.Request) (any, error) {
		return ServiceResponse{
			Name:    d.ServiceName,
			Started: stamp(d.StartedAt),
			Uptime:  int64(d.Now().Sub(d.StartedAt) / time.Second),
		}, nil
	})

	// @Summary Slot engine revision and build
	// @Tags Meta
	// @Success 200 {object} EngineResponse
	// @Router /meta/engine [get]
	httpkit.Get(r, "/engine", func(*http.Request) (any, error) {
		return EngineResponse{EngineVersion: version.Engine, Build: version.Info()}, nil
	})
}

func runChecks(ctx context.Context, checks []Check) ReadyResponse {
	out := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(checks))}
	for _, c := range checks {
		rc := ReadyCheck{Name: c.Name, Status: "ok"}
		if c.Run == nil {
			rc.Status = "skipped"
		} else if err := c.Run.Check(ctx); err != nil {
			rc.Status, rc.Error = "fail", err.Error()
			out.Status = "fail"
		}
		out.Checks = append(out.Checks, rc)
	}
	return out
}
