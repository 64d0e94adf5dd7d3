package middleware

import (
	"masterpos_server/api/health"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware records request counts and latency. The path label
// is the chi route pattern, so /products/42 and /products/7 land in the
// same /products/{id} series instead of one series per id.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		labels := prometheus.Labels{
			"method": r.Method,
			"path":   path,
			"status": strconv.Itoa(ww.Status()),
		}

		health.HttpRequests.With(labels).Inc()
		health.HttpDuration.With(labels).
			Observe(time.Since(start).Seconds())
	})
}
