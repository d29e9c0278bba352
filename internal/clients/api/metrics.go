package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "slots_tracker",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	},
	[]string{"method", "collection", "status"},
)

func observeRequest(method, collection string, status int, elapsed time.Duration) {
	histogramRequestTime.
		WithLabelValues(method, collection, statusLabel(status)).
		Observe(elapsed.Seconds())
}
