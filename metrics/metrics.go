package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "slotify"

// Metrics bundles the service's Prometheus collectors. A nil *Metrics is
// valid and records nothing, so wiring stays optional in tests.
type Metrics struct {
	bookingTransitions *prometheus.CounterVec
	availabilityChecks *prometheus.CounterVec
	slotsReturned      prometheus.Histogram
	requestDuration    *prometheus.HistogramVec
}

// New registers the collectors with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		bookingTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Booking lifecycle transitions by action and outcome.",
		}, []string{"action", "outcome"}),
		availabilityChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "checks_total",
			Help:      "Availability queries by operation and outcome.",
		}, []string{"operation", "outcome"}),
		slotsReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "slots_returned",
			Help:      "Number of open slots returned per day query.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Default is the process-wide instance registered against the default
// Prometheus registry.
var Default = New(prometheus.DefaultRegisterer)

// IncTransition counts one lifecycle transition attempt.
func (m *Metrics) IncTransition(action, outcome string) {
	if m == nil {
		return
	}
	m.bookingTransitions.WithLabelValues(action, outcome).Inc()
}

// IncAvailability counts one availability query.
func (m *Metrics) IncAvailability(operation, outcome string) {
	if m == nil {
		return
	}
	m.availabilityChecks.WithLabelValues(operation, outcome).Inc()
}

// ObserveSlots records how many slots a day query returned.
func (m *Metrics) ObserveSlots(count int) {
	if m == nil {
		return
	}
	m.slotsReturned.Observe(float64(count))
}

// ObserveRequest records one HTTP request's latency.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
