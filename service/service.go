package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/pidigits/chudnovsky"
	"github.com/katalvlaran/pidigits/config"
)

// ComputeFunc is the engine entry point; chudnovsky.Compute by default.
type ComputeFunc func(digits uint32, opts ...chudnovsky.Option) (string, error)

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the service logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegisterer sets where metrics are registered. Nil is ignored.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) {
		if reg != nil {
			s.registerer = reg
		}
	}
}

// WithGatherer sets what /metrics exposes. Nil is ignored.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Service) {
		if g != nil {
			s.gatherer = g
		}
	}
}

// WithComputeFunc replaces the engine. Nil is ignored.
func WithComputeFunc(fn ComputeFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.compute = fn
		}
	}
}

// Service runs engine computations under a worker limit and a prefix cache.
// It is safe for concurrent use.
type Service struct {
	cfg        *config.Config
	compute    ComputeFunc
	engineOpts []chudnovsky.Option
	logger     *zap.Logger
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	metrics    *Metrics
	slots      chan struct{}
	cache      *prefixCache
}

// New creates a Service from a validated config.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		cfg:        cfg,
		compute:    chudnovsky.Compute,
		logger:     zap.NewNop(),
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
		slots:      make(chan struct{}, cfg.Workers),
		cache:      newPrefixCache(cfg.CacheDigits),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics = newMetrics(s.registerer)
	s.engineOpts = append(cfg.EngineOptions(), chudnovsky.WithLogger(s.logger.Named("engine")))

	return s
}

// Digits returns pi with digits fractional digits.
//
// Errors:
//   - chudnovsky.ErrInvalidArgument - digits == 0 or beyond the engine range.
//   - ErrDigitsLimit - digits > Config.MaxDigits.
//   - ErrUnavailable (joined with ctx.Err()) - ctx ended while waiting.
//
// A computation that outlives ctx still completes and seeds the cache.
func (s *Service) Digits(ctx context.Context, digits uint32) (string, error) {
	if _, err := chudnovsky.Plan(digits, s.engineOpts...); err != nil {
		return "", err
	}
	if digits > s.cfg.MaxDigits {
		return "", fmt.Errorf("%d > %d: %w", digits, s.cfg.MaxDigits, ErrDigitsLimit)
	}
	s.metrics.requestedDigits.Observe(float64(digits))

	if pi, ok := s.cache.get(digits); ok {
		s.metrics.cacheHits.Inc()
		return pi, nil
	}
	s.metrics.cacheMisses.Inc()

	select {
	case s.slots <- struct{}{}:
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for worker: %w", joinUnavailable(ctx.Err()))
	}

	type result struct {
		pi  string
		err error
	}
	done := make(chan result, 1)

	go func() {
		defer func() { <-s.slots }()
		s.metrics.inflight.Inc()
		defer s.metrics.inflight.Dec()

		start := time.Now()
		pi, err := s.compute(digits, s.engineOpts...)
		s.metrics.computeDuration.Observe(time.Since(start).Seconds())
		if err == nil {
			s.cache.put(pi)
			s.metrics.cachedDigits.Set(float64(s.cache.digits()))
		}
		done <- result{pi: pi, err: err}
	}()

	select {
	case r := <-done:
		return r.pi, r.err
	case <-ctx.Done():
		s.logger.Warn("caller gave up before computation finished",
			zap.Uint32("digits", digits),
			zap.Error(ctx.Err()),
		)
		return "", fmt.Errorf("waiting for result: %w", joinUnavailable(ctx.Err()))
	}
}

// joinUnavailable wraps a context error so both errors.Is(ErrUnavailable)
// and errors.Is(context.DeadlineExceeded) hold.
func joinUnavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
