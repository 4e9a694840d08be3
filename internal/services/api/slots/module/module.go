// Package module mounts slot search and exposes its port to other modules
package module

import (
	"slotfinder/internal/modkit"
	"slotfinder/internal/modkit/httpkit"
	"slotfinder/internal/platform/net/middleware"
	"slotfinder/internal/services/api/slots/domain"
	slotshttp "slotfinder/internal/services/api/slots/http"
	slotssvc "slotfinder/internal/services/api/slots/service"
)

// Ports is the port set other modules and binaries may pull from slots
type Ports struct {
	Searcher domain.ServicePort
}

// Module serves /slots
type Module struct {
	spec modkit.Spec
	svc  slotssvc.Service
}

// New builds the slots module from deps and the configured limits
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) *Module {
	spec := modkit.Build(append([]modkit.Option{
		modkit.WithName("slots"),
		modkit.WithPrefix("/slots"),
		// bodies must be JSON; bodyless requests pass through
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	}, opts...)...)

	domain.RegisterValidators()
	return &Module{
		spec: spec,
		svc:  slotssvc.New(opt.Limits, slotssvc.NewRecorder(deps.Metrics), deps.Clock()),
	}
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.spec.Name }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.spec.Mount(r, func(sr httpkit.Router) { slotshttp.Register(sr, m.svc) })
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return Ports{Searcher: m.svc} }
