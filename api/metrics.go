package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects request and token-refresh counters for the client.
// A nil *Metrics disables all recording.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	refreshesTotal  *prometheus.CounterVec
	syncsTotal      *prometheus.CounterVec
}

// NewMetrics creates the client metric set and registers it with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prashikshan_client_requests_total",
			Help: "API requests issued, by method and HTTP status.",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prashikshan_client_request_duration_seconds",
			Help:    "API request latency, by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		refreshesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prashikshan_client_token_refreshes_total",
			Help: "Token refresh attempts, by outcome.",
		}, []string{"outcome"}),
		syncsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prashikshan_client_draft_syncs_total",
			Help: "Logbook draft sync attempts, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.refreshesTotal, m.syncsTotal)
	return m
}

func (m *Metrics) observeRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requestsTotal.WithLabelValues(method, label).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) observeRefresh(ok bool) {
	if m == nil {
		return
	}
	m.refreshesTotal.WithLabelValues(outcomeLabel(ok)).Inc()
}

// ObserveDraftSync records a logbook draft sync attempt.
func (m *Metrics) ObserveDraftSync(ok bool) {
	if m == nil {
		return
	}
	m.syncsTotal.WithLabelValues(outcomeLabel(ok)).Inc()
}

func outcomeLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
