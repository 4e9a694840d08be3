// @title         Slotfinder API
// @version       0.1.0
// @description   Resolves recurring availability into bookable, aligned appointment slots

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotfinder/internal/core/version"
	"slotfinder/internal/platform/config"
	"slotfinder/internal/platform/logger"
	"slotfinder/internal/platform/metrics"
	phttp "slotfinder/internal/platform/net/http"

	"slotfinder/internal/services/api"
)

func main() {
	// .env is optional; real env always wins
	if err := config.LoadDotenv(); err != nil {
		logger.Get().Panic().Err(err).Msg("dotenv load failed")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()
	l.Info().Interface("build", version.Info()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	var reg *metrics.Registry
	if apiCfg.MayBool("METRICS", true) {
		reg = metrics.New(apiCfg.MayString("METRICS_NAMESPACE", "slotfinder"))
	}

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Metrics:        reg,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  reg != nil,
			Timeout:        apiCfg.MayDuration("TIMEOUT", 30*time.Second),
			Slow:           apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
			MaxInFlight:    apiCfg.MayInt("MAX_IN_FLIGHT", 256),
		},
	)

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
