package transport

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "haladesk",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Outgoing HaLaDesk API requests by method and status code.",
	}, []string{"method", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "haladesk",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Outgoing HaLaDesk API request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func observe(method, code string, d time.Duration) {
	requestsTotal.WithLabelValues(method, code).Inc()
	requestDuration.WithLabelValues(method).Observe(d.Seconds())
}
