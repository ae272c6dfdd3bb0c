package perf

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// operationDuration records every timer stopped through an Analyzer.
//
// Metric name: perf_operation_duration_seconds
// Labels:
//   - category: the category passed to Analyzer.Stop
var operationDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
	prometheus.HistogramOpts{
		Subsystem: "perf",
		Name:      "operation_duration_seconds",
		Help:      "Duration of timed operations, by category",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), //nolint:mnd
	},
	[]string{"category"},
)

var runningTimers = promauto.NewGauge(prometheus.GaugeOpts{ //nolint:gochecknoglobals
	Subsystem: "perf",
	Name:      "running_timers",
	Help:      "Number of timers currently tracked by all analyzers",
})
