package middleware

import (
	"errors"
	"fmt"
	"masterpos_server/services"
	"net/http"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// getRateLimitForEndpoint picks the limit bucket for a request. Admin
// mutations get the tightest budget, list reads the mid one.
func (mw *Middleware) getRateLimitForEndpoint(path, method string) (int, time.Duration) {
	if strings.HasPrefix(path, "/admin") {
		return mw.cfg.RateLimit.AdminLimit, mw.cfg.RateLimit.AdminWindow
	}

	if method == http.MethodGet && strings.HasPrefix(path, "/products") {
		return mw.cfg.RateLimit.ExpensiveLimit, mw.cfg.RateLimit.ExpensiveWindow
	}

	return mw.cfg.RateLimit.GeneralLimit, mw.cfg.RateLimit.GeneralWindow
}

// getClientIP extracts the real client IP from request headers
func (mw *Middleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// RateLimitMiddleware implements sliding window rate limiting backed by
// redis. It fails open: a cache error allows the request through.
func (mw *Middleware) RateLimitMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mw.cfg.RateLimit.Enabled || !mw.cacheService.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			// Health checks and the landing route are never limited.
			if r.URL.Path == "/" || strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := mw.getClientIP(r)
			limit, window := mw.getRateLimitForEndpoint(r.URL.Path, r.Method)

			count, err := mw.cacheService.IncrementRateLimit(clientIP, r.URL.Path, window)
			if err != nil {
				if !errors.Is(err, services.ErrCacheDisabled) {
					mw.logger.Warn("Rate limit cache error, allowing request",
						gecho.Field("error", err),
						gecho.Field("ip", clientIP),
						gecho.Field("endpoint", r.URL.Path),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				mw.logger.Warn("Rate limit exceeded",
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", r.URL.Path),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
				)

				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))

				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}

			remaining := max(0, limit-count)
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

			next.ServeHTTP(w, r)
		})
	}
}
