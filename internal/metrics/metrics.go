package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics exposes counters/histograms for calls made to the barbershop API.
type APIMetrics struct {
	requestsTotal *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	m := &APIMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber_web",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total calls to the barbershop API",
		}, []string{"operation", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barber_web",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to the barbershop API",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.latency)
	return m
}

// Observe records one call. statusCode 0 means the request never got a response.
func (m *APIMetrics) Observe(operation string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(operation, StatusClass(statusCode)).Inc()
	m.latency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func StatusClass(code int) string {
	if code <= 0 {
		return "error"
	}
	return strconv.Itoa(code/100) + "xx"
}
