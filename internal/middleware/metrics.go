package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"go-content-api/internal/metrics"
)

// Metrics records every request against its chi route pattern, so
// /posts/1 and /posts/2 land in the same series.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			m.ObserveRequest(r.Method, route, wrapped.status, time.Since(started).Seconds())
		})
	}
}
