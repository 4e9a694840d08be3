// Package modkit wires API modules: shared deps, build options and cross module ports
package modkit

import (
	"net/http"

	"slotfinder/internal/modkit/httpkit"
)

// Module is what the API composition root mounts
type Module interface {
	Name() string
	MountRoutes(r httpkit.Router)
	// Ports is the port bundle other modules may pull from, nil when none
	Ports() any
}

// Option adjusts a module Spec before the module is built
type Option func(*Spec)

// Spec is the resolved build configuration of a module
type Spec struct {
	Name        string
	Prefix      string
	Middlewares []func(http.Handler) http.Handler
	Ports       any
}

// WithName overrides the module name used in logs
func WithName(name string) Option { return func(s *Spec) { s.Name = name } }

// WithPrefix overrides the path the module mounts under
func WithPrefix(prefix string) Option { return func(s *Spec) { s.Prefix = prefix } }

// WithMiddlewares appends module scoped middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Spec) { s.Middlewares = append(s.Middlewares, mw...) }
}

// WithPorts hands a module the ports it consumes from other modules
func WithPorts(p any) Option { return func(s *Spec) { s.Ports = p } }

// Build applies opts in order, so callers append overrides after a module's defaults
func Build(opts ...Option) Spec {
	var s Spec
	for _, o := range opts {
		o(&s)
	}
	return s
}

// Mount registers routes under s.Prefix behind s.Middlewares
func (s Spec) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	r.Route(s.Prefix, func(sub httpkit.Router) {
		if len(s.Middlewares) > 0 {
			sub.Use(s.Middlewares...)
		}
		routes(sub)
	})
}
