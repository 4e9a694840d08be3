// Package api composes the slotfinder HTTP API from its modules
package api

import (
	"time"

	"slotfinder/internal/platform/config"
	"slotfinder/internal/platform/logger"
	"slotfinder/internal/platform/metrics"
	phttp "slotfinder/internal/platform/net/http"
	"slotfinder/internal/platform/net/middleware"

	"slotfinder/internal/modkit"
	"slotfinder/internal/modkit/httpkit"
	"slotfinder/internal/modkit/swaggerkit"

	metamod "slotfinder/internal/services/api/meta/module"
	slotsdomain "slotfinder/internal/services/api/slots/domain"
	slotsmod "slotfinder/internal/services/api/slots/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Metrics        *metrics.Registry
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
	Timeout        time.Duration
	Slow           time.Duration
	MaxInFlight    int
	CORSOrigins    []string
	Now            func() time.Time
}

// Mount mounts the API onto r; call it before any other route is added
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config, Metrics: opt.Metrics, Now: opt.Now}

	// load balancers hit /health before any routing or logging
	r.Use(middleware.Heartbeat("/health"))

	// slots owns the search port; meta runs a canary search through it
	slots := slotsmod.New(deps, slotsmod.FromConfig(deps.Cfg))
	searcher := modkit.MustPortsOf[slotsdomain.ServicePort](slots)
	mods := []modkit.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Slots: searcher})),
		slots,
	}

	stack := httpkit.Stack(httpkit.StackOptions{
		Timeout:     opt.Timeout,
		Slow:        opt.Slow,
		CORSOrigins: opt.CORSOrigins,
		Metrics:     opt.Metrics,
		MaxInFlight: opt.MaxInFlight,
	})

	log := logger.Named("api")
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
}
