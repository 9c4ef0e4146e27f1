package kitchen

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for upstream requests.
const (
	OutcomeOK          = "ok"
	OutcomeBadStatus   = "bad_status"
	OutcomeTransport   = "transport_error"
	OutcomeDecodeError = "decode_error"
)

// Metrics holds the collectors for calls made to the kitchen API.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the upstream collectors and registers them with reg.
// A nil reg leaves them unregistered, which is what most tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kitchenfinder_upstream_requests_total",
				Help: "Requests made to the kitchen API, by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kitchenfinder_upstream_request_duration_seconds",
				Help:    "Latency of requests made to the kitchen API",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

func (m *Metrics) observe(operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
