// Package metrics holds the Prometheus collectors of the estimator.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Analysis outcomes used as label values.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeRetried   = "retried"
)

// nolint: gochecknoglobals
var (
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimator_uploads_total",
			Help: "Total number of accepted CAD uploads",
		},
		[]string{"material", "machine_profile"},
	)

	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estimator_upload_bytes",
			Help:    "Size of accepted CAD uploads",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		},
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimator_analyses_total",
			Help: "Total number of part analyses by outcome",
		},
		[]string{"outcome", "trigger"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estimator_analysis_duration_seconds",
			Help:    "Time taken to analyse a part",
			Buckets: DefaultBuckets,
		},
		[]string{"trigger"},
	)
)

// RecordUpload records an accepted upload.
func RecordUpload(materialCode, machineProfile string, size int64) {
	UploadsTotal.WithLabelValues(materialCode, machineProfile).Inc()
	UploadBytes.Observe(float64(size))
}

// RecordAnalysis records one analysis run. trigger is "worker" or "sync".
func RecordAnalysis(trigger, outcome string, duration time.Duration) {
	AnalysesTotal.WithLabelValues(outcome, trigger).Inc()
	AnalysisDuration.WithLabelValues(trigger).Observe(duration.Seconds())
}
