// Package httptransport assembles the HTTP surface: middleware chain, health
// and metrics endpoints, and feature routes. Handlers live with their
// features; this package only wires them together.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"saudiid/internal/platform/metrics"
	"saudiid/internal/platform/middleware"
	"saudiid/pkg/platform/httputil"
)

// requestTimeout bounds every request end to end.
const requestTimeout = 30 * time.Second

// Registrar is implemented by feature handlers that attach their routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// NewRouter wires the shared middleware chain, operational endpoints, and all
// feature routes. health may be nil when no external dependency is
// configured; readiness then reduces to liveness.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, health HealthChecker, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Telemetry(m))

	r.Get("/healthz", handleHealthz)
	r.Get("/readyz", handleReadyz(logger, health))
	r.Handle("/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleReadyz(logger *slog.Logger, health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health.Health(r.Context()); err != nil {
				logger.WarnContext(r.Context(), "readiness check failed",
					"request_id", middleware.GetRequestID(r.Context()),
					"error", err.Error(),
				)
				httputil.WriteJSON(w, http.StatusServiceUnavailable,
					map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
