package infrastructure

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "weathertext"

// PrometheusMetricsCollector implements the MetricsCollector port on its own registry
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	cacheHitRatio   *prometheus.GaugeVec
	providerCalls   *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec

	mu     sync.Mutex
	counts map[string]*cacheCounts
}

type cacheCounts struct {
	hits   int64
	misses int64
}

// NewPrometheusMetricsCollector creates the collectors on a fresh registry,
// so several instances can coexist in one process.
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "The total number of weather text cache hits",
			},
			[]string{"provider"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_misses_total",
				Help:      "The total number of weather text cache misses",
			},
			[]string{"provider"},
		),
		cacheHitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hit_ratio",
				Help:      "Cache hit ratio (hits/total lookups)",
			},
			[]string{"provider"},
		),
		providerCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "provider_requests_total",
				Help:      "The total number of weather provider fetches",
			},
			[]string{"provider", "result"},
		),
		providerLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Weather provider fetch duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		counts: make(map[string]*cacheCounts),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context, provider string) {
	m.cacheHits.WithLabelValues(provider).Inc()
	m.updateHitRatio(provider, true)
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context, provider string) {
	m.cacheMisses.WithLabelValues(provider).Inc()
	m.updateHitRatio(provider, false)
}

func (m *PrometheusMetricsCollector) RecordProviderRequest(ctx context.Context, provider string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "error"
	}
	m.providerCalls.WithLabelValues(provider, result).Inc()
	m.providerLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

// Registry exposes the registry so callers can add collectors
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *PrometheusMetricsCollector) updateHitRatio(provider string, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counts[provider]
	if !ok {
		c = &cacheCounts{}
		m.counts[provider] = c
	}
	if hit {
		c.hits++
	} else {
		c.misses++
	}
	m.cacheHitRatio.WithLabelValues(provider).Set(float64(c.hits) / float64(c.hits+c.misses))
}
