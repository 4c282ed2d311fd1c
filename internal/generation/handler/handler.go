// Package handler exposes the generation endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"saudiid/internal/platform/middleware"
	"saudiid/pkg/domain"
	dErrors "saudiid/pkg/domain-errors"
	"saudiid/pkg/platform/httputil"
)

// Service defines the generation operations the handler depends on.
type Service interface {
	Generate(ctx context.Context, category domain.Category, count int) ([]domain.NationalID, error)
}

// Handler handles ID generation endpoints.
type Handler struct {
	logger     *slog.Logger
	generation Service
}

// New creates a new generation Handler.
func New(generation Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, generation: generation}
}

// Register registers the generation routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/ids/generate", h.handleGenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[GenerateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ids, err := h.generation.Generate(ctx, req.category, req.Count)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeValidation) || dErrors.Is(err, dErrors.CodeInvalidInput) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to generate ids",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, responseFrom(req.category, ids))
}
