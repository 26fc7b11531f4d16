package webhook

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics publishes invocation counters and request latencies to a
// Prometheus registry. A nil *Metrics is valid and records nothing, so the
// invoker can call it unconditionally.
type Metrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers webhook metrics on reg. Pass
// prometheus.DefaultRegisterer to use the process-wide registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webhook_invocations_total",
			Help: "Webhook invocations by result status.",
		}, []string{"status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "webhook_request_duration_seconds",
			Help:    "Outbound webhook request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg != nil {
		reg.MustRegister(m.invocations, m.duration)
	}
	return m
}

func (m *Metrics) observe(status, method string, d time.Duration) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(status).Inc()
	m.duration.WithLabelValues(method).Observe(d.Seconds())
}
