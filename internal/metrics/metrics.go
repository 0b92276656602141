// Package metrics records request and kata metrics for Prometheus
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "katas"

// Recorder collects metrics on its own registry
type Recorder struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	pokerHands          *prometheus.CounterVec
	inputErrors         *prometheus.CounterVec
}

// NewRecorder returns a Recorder with every metric registered
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Recorder{
		registry: registry,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status code",
		}, []string{"route", "code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		pokerHands: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poker",
			Name:      "hands_evaluated_total",
			Help:      "Poker hands evaluated by resulting rank",
		}, []string{"rank"}),
		inputErrors: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_errors_total",
			Help:      "Rejected kata inputs by kata",
		}, []string{"kata"}),
	}
}

// ObserveRequest records one finished HTTP request
func (r *Recorder) ObserveRequest(route string, code int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	r.httpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// PokerHand records an evaluated hand
func (r *Recorder) PokerHand(rank string) {
	r.pokerHands.WithLabelValues(rank).Inc()
}

// InputError records a rejected input
func (r *Recorder) InputError(kata string) {
	r.inputErrors.WithLabelValues(kata).Inc()
}

// Gatherer exposes the registry, mostly for tests
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the metrics in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
