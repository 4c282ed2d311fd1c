// Package generation produces valid national IDs on demand. Randomness is
// injected so the service stays deterministic under test while production
// wiring uses crypto/rand.
package generation

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"saudiid/internal/generation/metrics"
	"saudiid/internal/stats"
	"saudiid/pkg/domain"
	dErrors "saudiid/pkg/domain-errors"
	"saudiid/pkg/requestcontext"
)

// Service generates national IDs and records per-day counters.
type Service struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	stats    stats.Recorder
	source   io.Reader
	maxCount int
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithStats attaches a daily outcome counter store.
func WithStats(r stats.Recorder) Option {
	return func(s *Service) { s.stats = r }
}

// WithSource overrides the randomness source. Tests pass seeded or failing
// readers here.
func WithSource(src io.Reader) Option {
	return func(s *Service) { s.source = src }
}

// NewService creates a generation service. maxCount caps the number of IDs
// produced per request.
func NewService(logger *slog.Logger, maxCount int, opts ...Option) *Service {
	s := &Service{
		logger:   logger,
		source:   rand.Reader,
		maxCount: maxCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces count fresh IDs of the given category.
//
// Returns a coded error: invalid_input for an unknown category,
// validation_failed for a count outside [1, maxCount], unavailable when the
// randomness source fails.
func (s *Service) Generate(ctx context.Context, category domain.Category, count int) ([]domain.NationalID, error) {
	tracer := otel.Tracer("saudiid/generation")
	ctx, span := tracer.Start(ctx, "generation.generate",
		trace.WithAttributes(
			attribute.String("id.category", string(category)),
			attribute.Int("generate.count", count),
		))
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.ObserveGenerateLatency(time.Since(start)) }()

	if !category.IsValid() {
		s.metrics.IncrementFailure(string(domain.GenerateInvalidCategory))
		return nil, dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("unknown category %q", string(category)))
	}
	if count < 1 || count > s.maxCount {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("count must be between 1 and %d", s.maxCount))
	}

	ids := make([]domain.NationalID, 0, count)
	for i := 0; i < count; i++ {
		id, err := domain.GenerateNationalID(category, s.source)
		if err != nil {
			kind := domain.GenerateKindOf(err)
			s.metrics.IncrementFailure(string(kind))
			s.logger.ErrorContext(ctx, "id generation failed",
				"request_id", requestcontext.RequestID(ctx),
				"kind", string(kind),
				"error", err.Error(),
			)
			if kind == domain.GenerateRandomnessUnavailable {
				return nil, dErrors.Wrap(err, dErrors.CodeUnavailable,
					"randomness source unavailable")
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "id generation failed")
		}
		ids = append(ids, id)
	}

	s.metrics.IncrementGenerated(string(category), len(ids))
	s.record(ctx, category, len(ids))
	return ids, nil
}

// record increments the daily generation counter. Best-effort, like the
// verification side.
func (s *Service) record(ctx context.Context, category domain.Category, n int) {
	if s.stats == nil {
		return
	}
	outcome := stats.OutcomeGeneratedCitizen
	if category == domain.CategoryResident {
		outcome = stats.OutcomeGeneratedResident
	}
	day := stats.Day(requestcontext.Now(ctx))
	for i := 0; i < n; i++ {
		if err := s.stats.Increment(ctx, day, outcome); err != nil {
			s.logger.WarnContext(ctx, "failed to record generation outcome",
				"request_id", requestcontext.RequestID(ctx),
				"outcome", string(outcome),
				"error", err.Error(),
			)
			return
		}
	}
}
