// Package handler exposes the verification endpoints.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"saudiid/internal/platform/middleware"
	"saudiid/internal/verification"
	dErrors "saudiid/pkg/domain-errors"
	"saudiid/pkg/platform/httputil"
)

// Service defines the verification operations the handler depends on.
type Service interface {
	Inspect(ctx context.Context, raw string) *verification.Report
	InspectBatch(ctx context.Context, raws []string) []*verification.Report
}

// Handler handles ID validation endpoints.
type Handler struct {
	logger       *slog.Logger
	verification Service
	batchLimit   int
}

// New creates a new verification Handler. batchLimit caps the number of IDs
// accepted per batch request.
func New(verification Service, logger *slog.Logger, batchLimit int) *Handler {
	return &Handler{
		logger:       logger,
		verification: verification,
		batchLimit:   batchLimit,
	}
}

// Register registers the verification routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/ids/validate", h.handleValidate)
	r.Post("/v1/ids/validate/batch", h.handleValidateBatch)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	report := h.verification.Inspect(ctx, req.ID)
	httputil.WriteJSON(w, http.StatusOK, resultFromReport(report))
}

func (h *Handler) handleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BatchValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if len(req.IDs) > h.batchLimit {
		h.logger.WarnContext(ctx, "batch size over limit",
			"request_id", requestID,
			"size", len(req.IDs),
			"limit", h.batchLimit,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("batch exceeds limit of %d ids", h.batchLimit)))
		return
	}

	reports := h.verification.InspectBatch(ctx, req.IDs)
	resp := BatchValidateResponse{Results: make([]ValidationResult, len(reports))}
	for i, report := range reports {
		resp.Results[i] = resultFromReport(report)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
