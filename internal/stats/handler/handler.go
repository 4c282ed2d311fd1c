// Package handler exposes the daily statistics endpoint.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"saudiid/internal/platform/middleware"
	"saudiid/internal/stats"
	dErrors "saudiid/pkg/domain-errors"
	"saudiid/pkg/platform/httputil"
	"saudiid/pkg/requestcontext"
)

// Handler serves daily outcome counters.
type Handler struct {
	logger *slog.Logger
	store  stats.Store
}

// New creates a new stats Handler.
func New(store stats.Store, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, store: store}
}

// Register registers the stats routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/v1/stats", h.handleGetStats)
}

// StatsResponse is the body of GET /v1/stats.
type StatsResponse struct {
	Day    string           `json:"day"`
	Counts map[string]int64 `json:"counts"`
}

// handleGetStats returns counters for the day given by the optional
// ?day=YYYY-MM-DD query parameter, defaulting to today (UTC).
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	day := r.URL.Query().Get("day")
	if day == "" {
		day = stats.Day(requestcontext.Now(ctx))
	} else if _, err := time.Parse("2006-01-02", day); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation,
			"day must be formatted as YYYY-MM-DD"))
		return
	}

	counts, err := h.store.Counts(ctx, day)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read stats",
			"request_id", requestID,
			"day", day,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to read stats"))
		return
	}

	resp := StatsResponse{Day: day, Counts: make(map[string]int64, len(counts))}
	for outcome, n := range counts {
		resp.Counts[string(outcome)] = n
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
