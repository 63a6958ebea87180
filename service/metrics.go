package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service collectors. They are registered on the
// registerer handed to New, so tests can use an isolated registry.
type Metrics struct {
	requests        *prometheus.CounterVec
	computeDuration prometheus.Histogram
	requestedDigits prometheus.Histogram
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	inflight        prometheus.Gauge
	cachedDigits    prometheus.Gauge
}

// newMetrics creates and registers the collectors on reg. When reg already
// holds a collector of the same name, as after a second New on the default
// registry, the existing collector is reused.
func newMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		requests: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pidigits",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"})),
		computeDuration: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pidigits",
			Name:      "compute_duration_seconds",
			Help:      "Wall time of engine computations.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
		})),
		requestedDigits: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pidigits",
			Name:      "requested_digits",
			Help:      "Digit counts of accepted requests.",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 8), // 10 to 1e8
		})),
		cacheHits: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pidigits",
			Name:      "cache_hits_total",
			Help:      "Requests answered from the prefix cache.",
		})),
		cacheMisses: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pidigits",
			Name:      "cache_misses_total",
			Help:      "Requests that required a computation.",
		})),
		inflight: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pidigits",
			Name:      "inflight_computations",
			Help:      "Computations currently running.",
		})),
		cachedDigits: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pidigits",
			Name:      "cached_digits",
			Help:      "Fractional digits held by the prefix cache.",
		})),
	}
}

// register adds c to reg and returns the collector now serving its name.
// Any registration error other than a duplicate is a programming error.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}

	return c
}
