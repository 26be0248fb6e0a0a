package transport

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeOK           = "ok"
	outcomeUnauthorized = "unauthorized"
	outcomeError        = "transport_error"
)

// Metrics counts round trips by outcome and session evictions caused by
// 401 responses. All metrics are registered on the registry handed to
// NewMetrics.
type Metrics struct {
	requestsTotal  *prometheus.CounterVec
	evictionsTotal prometheus.Counter
}

// NewMetrics creates and registers the tripper metrics.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalogkit_http_requests_total",
				Help: "Outgoing HTTP requests by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		evictionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "catalogkit_session_evictions_total",
				Help: "Sessions evicted after an unauthorized response",
			},
		),
	}
	registry.MustRegister(m.requestsTotal, m.evictionsTotal)
	return m
}

// observe is nil-safe so the tripper works uninstrumented.
func (m *Metrics) observe(method, outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, outcome).Inc()
	if outcome == outcomeUnauthorized {
		m.evictionsTotal.Inc()
	}
}
