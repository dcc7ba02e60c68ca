package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Payments         *prometheus.CounterVec
	ProcessorLatency *prometheus.HistogramVec
}

func NewServerMetrics(service string) *ServerMetrics {
	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gateway",
		Subsystem: service,
		Name:      "payments_total",
		Help:      "Total number of payment requests by operation and outcome.",
	}, []string{"operation", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gateway",
		Subsystem: service,
		Name:      "processor_request_duration_ms",
		Help:      "Payment processor round-trip latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"operation"})

	prometheus.MustRegister(payments, latency)
	return &ServerMetrics{Payments: payments, ProcessorLatency: latency}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
