package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/okrsearch/internal/domain"
	"github.com/kailas-cloud/okrsearch/internal/domain/entity"
	"github.com/kailas-cloud/okrsearch/internal/domain/search/result"
	"github.com/kailas-cloud/okrsearch/internal/domain/search/term"
	"github.com/kailas-cloud/okrsearch/internal/logger"
	"github.com/kailas-cloud/okrsearch/internal/metrics"
)

var tracer = otel.Tracer("okrsearch/usecase/search")

// Providers holds one provider per entity kind.
type Providers struct {
	Objectives Provider[result.Objective]
	KeyResults Provider[result.KeyResult]
	Teams      Provider[result.Team]
	Users      Provider[result.User]
}

// Service fans a term out to every provider and merges the answers into one envelope.
type Service struct {
	providers Providers
	cfg       domain.SearchConfig
}

// New creates a search service. Zero config values fall back to defaults;
// Limit is clamped to MaxLimit.
func New(p Providers, cfg domain.SearchConfig) *Service {
	def := domain.DefaultSearchConfig()
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.Limit <= 0 {
		cfg.Limit = def.Limit
	}
	cfg.Limit = min(cfg.Limit, cfg.MaxLimit)
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = def.ProviderTimeout
	}
	return &Service{providers: p, cfg: cfg}
}

// Search returns the envelope for raw. A blank term yields the empty envelope
// without touching any provider. A failing provider contributes an empty
// sequence; only when every provider fails is domain.ErrAllProvidersFailed returned.
func (s *Service) Search(ctx context.Context, raw string) (result.Envelope, error) {
	q := term.Normalize(raw)
	if q == "" {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		return result.Empty(), nil
	}

	ctx, span := tracer.Start(ctx, "Search",
		trace.WithAttributes(attribute.Int("search.term_length", len([]rune(q)))),
	)
	defer span.End()

	var (
		env  result.Envelope
		errs [4]error
		g    errgroup.Group
	)
	g.Go(func() error {
		env.Objectives, errs[0] = gather(ctx, s.providers.Objectives, q, s.cfg)
		return nil
	})
	g.Go(func() error {
		env.KeyResults, errs[1] = gather(ctx, s.providers.KeyResults, q, s.cfg)
		return nil
	})
	g.Go(func() error {
		env.Teams, errs[2] = gather(ctx, s.providers.Teams, q, s.cfg)
		return nil
	})
	g.Go(func() error {
		env.Users, errs[3] = gather(ctx, s.providers.Users, q, s.cfg)
		return nil
	})
	_ = g.Wait() // branches never return errors; failures land in errs

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}

	switch failed {
	case len(errs):
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		err := fmt.Errorf("%w: %w", domain.ErrAllProvidersFailed, errors.Join(errs[:]...))
		span.RecordError(err)
		span.SetStatus(codes.Error, "all providers failed")
		return result.Empty(), err
	case 0:
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeComplete).Inc()
	default:
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomePartial).Inc()
	}

	env = env.Normalize()
	span.SetAttributes(
		attribute.Int("search.failed_providers", failed),
		attribute.Int("search.results", env.Total()),
	)
	return env, nil
}

type outcome[T any] struct {
	items []T
	err   error
}

// gather runs one provider under its own timeout. Any error, timeout or panic
// is reported and yields a nil sequence.
func gather[T any](ctx context.Context, p Provider[T], q string, cfg domain.SearchConfig) ([]T, error) {
	kind := p.Kind()
	ctx, span := tracer.Start(ctx, "Provider",
		trace.WithAttributes(attribute.String("okr.kind", string(kind))),
	)
	defer span.End()
	ctx = logger.With(ctx, zap.String("kind", string(kind)))

	ctx, cancel := context.WithTimeout(ctx, cfg.ProviderTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- outcome[T]{err: fmt.Errorf("%w: %s panicked: %v", domain.ErrProviderFailed, kind, rec)}
			}
		}()
		items, err := p.Search(ctx, q, cfg.Limit)
		done <- outcome[T]{items: items, err: err}
	}()

	var out outcome[T]
	select {
	case out = <-done:
	case <-ctx.Done():
		out.err = ctx.Err()
	}
	metrics.ProviderRequestDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())

	if out.err != nil {
		status := metrics.StatusError
		if errors.Is(out.err, context.DeadlineExceeded) {
			status = metrics.StatusTimeout
		}
		metrics.ProviderRequestsTotal.WithLabelValues(string(kind), status).Inc()
		logger.FromContext(ctx).Warn("search provider failed",
			zap.String("status", status),
			zap.Error(out.err),
		)
		span.RecordError(out.err)
		span.SetStatus(codes.Error, status)
		return nil, providerError(kind, out.err)
	}

	metrics.ProviderRequestsTotal.WithLabelValues(string(kind), metrics.StatusOK).Inc()
	if len(out.items) > cfg.Limit {
		out.items = out.items[:cfg.Limit]
	}
	span.SetAttributes(attribute.Int("okr.results", len(out.items)))
	return out.items, nil
}

func providerError(kind entity.Kind, err error) error {
	if errors.Is(err, domain.ErrProviderFailed) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrProviderFailed, kind, err)
}
