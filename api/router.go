package api

import (
	"context"
	"masterpos_server/api/middleware"
	"masterpos_server/config"
	"masterpos_server/services"
	"masterpos_server/store"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App() chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// config + record set
	cfg := config.GetConfig()
	st := store.GetInstance()

	// services
	sm := services.NewServiceManager(standardLogger, cfg, st)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.CacheService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(1 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(middleware.MetricsMiddleware)
	r.Use(mw.SetupLoggerMiddleware())

	// CORS
	r.Use(mw.SetupCORS().Handler)

	// Rate limiting (redis-backed, fail open)
	r.Use(mw.RateLimitMiddleware())

	// Register all routes
	NewRouterManager(standardLogger, sm).RegisterRoutes(r)

	// Initial load of the record set, the same fetch-on-mount the
	// dashboard does. A failure only logs; the table starts empty and
	// the next list request retries.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Upstream.RequestTimeout)
		defer cancel()
		if err := sm.CatalogService.Load(ctx); err != nil {
			standardLogger.Warn("Initial catalog load failed", gecho.Field("error", err))
		}
	}()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the masterPOS API"),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
