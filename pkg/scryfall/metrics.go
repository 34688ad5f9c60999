package scryfall

//
// Metrics definitions
//

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsSummaryObjectives returns the summary objectives for promauto.NewSummaryVec.
func metricsSummaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.5:  0.010, // 0.490 <= φ <= 0.510
		0.9:  0.010, // 0.899 <= φ <= 0.901
		0.99: 0.001, // 0.989 <= φ <= 0.991
	}
}

// Metrics contains the prometheus metrics of a client. A nil *Metrics
// is valid and does not record anything.
type Metrics struct {
	// requestsTotal counts the completed requests by operation and status code.
	requestsTotal *prometheus.CounterVec

	// requestsInflight gauges the number of requests currently inflight.
	requestsInflight prometheus.Gauge

	// requestDurationSeconds summarizes the duration of requests by operation.
	requestDurationSeconds *prometheus.SummaryVec
}

// NewMetrics creates the client metrics and registers them with reg. Use
// [prometheus.DefaultRegisterer] to register with the global registry.
// This function panics if the metrics are already registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scryfall_client_requests_total",
			Help: "Total number of requests sent to the Scryfall API",
		}, []string{"operation", "code"}),
		requestsInflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "scryfall_client_requests_inflight",
			Help: "The number of requests currently inflight",
		}),
		requestDurationSeconds: factory.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "scryfall_client_request_duration_seconds",
			Help:       "Summarizes the time to complete a request (in seconds)",
			Objectives: metricsSummaryObjectives(),
		}, []string{"operation"}),
	}
}

// begin records the start of the operation and returns the function
// to call with the resulting status code once the operation is done.
func (m *Metrics) begin(operation string) func(status int) {
	if m == nil {
		return func(int) {}
	}
	t0 := time.Now()
	m.requestsInflight.Inc()
	return func(status int) {
		m.requestsInflight.Dec()
		m.requestDurationSeconds.WithLabelValues(operation).Observe(time.Since(t0).Seconds())
		m.requestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	}
}
