// Prometheus instrumentation for the analysis pipeline.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AnalysesTotal counts analysis requests by outcome
	// (ok | invalid_sequence | bad_request).
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dnarisk_analyses_total",
		Help: "Number of sequence analyses, partitioned by outcome.",
	}, []string{"outcome"})

	// DetectionsTotal counts markers that passed the threshold filter.
	DetectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dnarisk_detections_total",
		Help: "Number of threshold-passing marker detections reported.",
	})

	// SequenceLength observes the cleaned length of analyzed sequences.
	SequenceLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dnarisk_sequence_length_bases",
		Help:    "Length in bases of cleaned sequences submitted for analysis.",
		Buckets: prometheus.ExponentialBuckets(16, 4, 8),
	})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
