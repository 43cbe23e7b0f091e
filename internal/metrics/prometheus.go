package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ComparisonsTotal counts direct two-text comparisons served by the API.
	ComparisonsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verity_comparisons_total",
		Help: "Number of direct text comparisons served.",
	})

	// ScansTotal counts finished team scans by outcome.
	ScansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "verity_scans_total",
		Help: "Number of team scans by outcome.",
	}, []string{"status"})

	// ScanDuration observes wall-clock duration of team scans.
	ScanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "verity_scan_duration_seconds",
		Help:    "Duration of team library scans.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	// PairsScored counts individual pair comparisons performed during scans.
	PairsScored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verity_pairs_scored_total",
		Help: "Number of pairwise comparisons performed during scans.",
	})
)

// InitPrometheus registers all collectors with the default registry.
func InitPrometheus() {
	prometheus.MustRegister(ComparisonsTotal, ScansTotal, ScanDuration, PairsScored)
}
