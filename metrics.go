package jwtmiddleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements core.Metrics using Prometheus.
type PrometheusMetrics struct {
	checks   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the authorization collectors with reg and
// returns a core.Metrics backed by them. Passing prometheus.DefaultRegisterer
// exposes them through promhttp.Handler.
//
//	jwtmiddleware_checks_total{mode, outcome}
//	jwtmiddleware_check_duration_seconds{mode}
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jwtmiddleware",
			Name:      "checks_total",
			Help:      "Authorization attempts by mode and outcome.",
		}, []string{"mode", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jwtmiddleware",
			Name:      "check_duration_seconds",
			Help:      "Time spent authorizing a request.",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		}, []string{"mode"}),
	}

	for _, c := range []prometheus.Collector{m.checks, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveCheck implements core.Metrics.
func (m *PrometheusMetrics) ObserveCheck(mode, outcome string, duration time.Duration) {
	m.checks.WithLabelValues(mode, outcome).Inc()
	m.duration.WithLabelValues(mode).Observe(duration.Seconds())
}
