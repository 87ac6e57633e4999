package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "forgedash_resolutions_total",
	Help: "Tree expansions handled, by resource kind and outcome",
}, []string{"kind", "outcome"})

var upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "forgedash_upstream_request_duration_seconds",
	Help:    "Latency of data management API calls",
	Buckets: prometheus.DefBuckets,
}, []string{"operation", "status"})

var droppedRows = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "forgedash_dropped_rows_total",
	Help: "Upstream records left out of a tree response",
}, []string{"reason"})

// ObserveResolution records the outcome of a single tree expansion.
func ObserveResolution(kind string, outcome string) {
	resolutions.WithLabelValues(kind, outcome).Inc()
}

// ObserveUpstream records one outbound call. status is 0 when no response was received.
func ObserveUpstream(operation string, status int, took time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	upstreamDuration.WithLabelValues(operation, code).Observe(took.Seconds())
}

func CountDropped(reason string) {
	droppedRows.WithLabelValues(reason).Inc()
}
