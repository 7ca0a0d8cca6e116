package scanner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Scan metrics
	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ovpncheck_scan_duration_seconds",
			Help:    "Duration of one configuration file scan in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	linesChecked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ovpncheck_lines_checked_total",
			Help: "Total number of configuration lines validated",
		},
		[]string{"status"}, // ok or error
	)

	linesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ovpncheck_lines_skipped_total",
			Help: "Total number of blank, comment, and ignored lines",
		},
	)
)
