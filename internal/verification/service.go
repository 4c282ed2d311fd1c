// Package verification inspects candidate national IDs and reports why they
// pass or fail. Parse failures are normal outcomes here, not errors: the
// service always produces a Report, and only infrastructure problems surface
// as errors.
package verification

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"saudiid/internal/stats"
	"saudiid/internal/verification/metrics"
	"saudiid/pkg/domain"
	"saudiid/pkg/requestcontext"
)

// defaultBatchWorkers bounds concurrent inspections within one batch request.
const defaultBatchWorkers = 8

// Report is the outcome of inspecting one candidate ID.
type Report struct {
	// Input is the string that was inspected, as received.
	Input string

	// Valid reports whether Input is a well-formed national ID.
	Valid bool

	// Category and CheckDigit are populated only when Valid.
	Category   domain.Category
	CheckDigit byte

	// Reason and Detail describe the failure when not Valid.
	Reason domain.ParseKind
	Detail string
}

// Service inspects candidate IDs and records per-day outcome counters.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	stats   stats.Recorder
	tracer  trace.Tracer
	workers int
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

// WithBatchWorkers overrides the per-batch concurrency bound.
func WithBatchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewService creates a verification service.
func NewService(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		logger:  logger,
		tracer:  otel.Tracer("saudiid/verification"),
		workers: defaultBatchWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Inspect validates a single candidate ID and returns its report.
func (s *Service) Inspect(ctx context.Context, raw string) *Report {
	ctx, span := s.tracer.Start(ctx, "verification.inspect")
	defer span.End()

	start := time.Now()
	report := inspect(raw)
	s.metrics.ObserveInspectLatency(time.Since(start))

	if report.Valid {
		span.SetAttributes(attribute.Bool("id.valid", true),
			attribute.String("id.category", string(report.Category)))
		s.metrics.IncrementOutcome("valid", "none")
	} else {
		span.SetAttributes(attribute.Bool("id.valid", false),
			attribute.String("id.reason", string(report.Reason)))
		s.metrics.IncrementOutcome("invalid", string(report.Reason))
	}

	s.record(ctx, outcomeFor(report))
	return report
}

// InspectBatch validates candidates concurrently and returns reports in input
// order. Concurrency is bounded; the batch never fails as a whole because
// individual failures are reports.
func (s *Service) InspectBatch(ctx context.Context, raws []string) []*Report {
	ctx, span := s.tracer.Start(ctx, "verification.inspect_batch",
		trace.WithAttributes(attribute.Int("batch.size", len(raws))))
	defer span.End()

	s.metrics.ObserveBatchSize(len(raws))

	reports := make([]*Report, len(raws))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			reports[i] = s.Inspect(ctx, raw)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return reports
}

func inspect(raw string) *Report {
	report := &Report{Input: raw}

	id, err := domain.ParseNationalID(raw)
	if err != nil {
		report.Reason = domain.ParseKindOf(err)
		report.Detail = err.Error()
		return report
	}

	report.Valid = true
	report.Category = id.Category()
	report.CheckDigit = id.CheckDigit()
	return report
}

// record increments the daily counter for the report's outcome. Stats are
// best-effort: failures are logged and never affect the response.
func (s *Service) record(ctx context.Context, outcome stats.Outcome) {
	if s.stats == nil {
		return
	}
	day := stats.Day(requestcontext.Now(ctx))
	if err := s.stats.Increment(ctx, day, outcome); err != nil {
		s.logger.WarnContext(ctx, "failed to record inspection outcome",
			"request_id", requestcontext.RequestID(ctx),
			"outcome", string(outcome),
			"error", err.Error(),
		)
	}
}

func outcomeFor(report *Report) stats.Outcome {
	if report.Valid {
		if report.Category == domain.CategoryCitizen {
			return stats.OutcomeValidCitizen
		}
		return stats.OutcomeValidResident
	}
	switch report.Reason {
	case domain.ParseWrongLength:
		return stats.OutcomeWrongLength
	case domain.ParseNonDigit:
		return stats.OutcomeNonDigit
	case domain.ParseInvalidCategory:
		return stats.OutcomeInvalidCategory
	default:
		return stats.OutcomeChecksumMismatch
	}
}
