package middleware

import (
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
)

// SetupLoggerMiddleware wires gecho's request logger. Health probes and
// the prometheus scrape are skipped to keep the log readable.
func (mw *Middleware) SetupLoggerMiddleware() func(http.Handler) http.Handler {
	logging := gecho.Handlers.CreateLoggingMiddleware(mw.logger)

	return func(next http.Handler) http.Handler {
		logged := logging(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			logged.ServeHTTP(w, r)
		})
	}
}
