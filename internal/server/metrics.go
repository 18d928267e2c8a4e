package server

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sdankbar/jaqumal-graph/pkg/observability"
)

var (
	layoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jaqumal_layouts_total",
		Help: "Layout runs by outcome.",
	}, []string{"outcome"})

	layoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jaqumal_layout_duration_seconds",
		Help:    "End to end layout run duration.",
		Buckets: prometheus.DefBuckets,
	})

	engineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jaqumal_engine_runs_total",
		Help: "External engine invocations by outcome.",
	}, []string{"outcome"})

	engineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jaqumal_engine_duration_seconds",
		Help:    "External engine round trip duration.",
		Buckets: prometheus.DefBuckets,
	})

	cacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jaqumal_cache_events_total",
		Help: "Cache hits, misses, and writes by key type.",
	}, []string{"event", "key_type"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jaqumal_http_requests_total",
		Help: "HTTP requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jaqumal_http_request_duration_seconds",
		Help:    "HTTP request duration by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// layoutMetrics feeds layout hook events into the prometheus collectors.
type layoutMetrics struct {
	observability.NoopLayoutHooks
}

func (layoutMetrics) OnEngineComplete(_ context.Context, _ string, _ int, duration time.Duration, err error) {
	engineRuns.WithLabelValues(outcome(err)).Inc()
	engineDuration.Observe(duration.Seconds())
}

func (layoutMetrics) OnLayoutComplete(_ context.Context, _ string, duration time.Duration, err error) {
	layoutsTotal.WithLabelValues(outcome(err)).Inc()
	layoutDuration.Observe(duration.Seconds())
}

type cacheMetrics struct {
	observability.NoopCacheHooks
}

func (cacheMetrics) OnCacheHit(_ context.Context, keyType string) {
	cacheEvents.WithLabelValues("hit", keyType).Inc()
}

func (cacheMetrics) OnCacheMiss(_ context.Context, keyType string) {
	cacheEvents.WithLabelValues("miss", keyType).Inc()
}

func (cacheMetrics) OnCacheSet(_ context.Context, keyType string, _ int) {
	cacheEvents.WithLabelValues("set", keyType).Inc()
}

type serverMetrics struct {
	observability.NoopServerHooks
}

func (serverMetrics) OnResponse(_ context.Context, method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

var installMetricsOnce sync.Once

// installMetrics wires the collectors into the global hook registry.
func installMetrics() {
	installMetricsOnce.Do(func() {
		observability.SetLayoutHooks(layoutMetrics{})
		observability.SetCacheHooks(cacheMetrics{})
		observability.SetServerHooks(serverMetrics{})
	})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
