// Package metrics exposes Prometheus collectors for the inference service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels fully successful predictions.
	OutcomeSuccess = "success"
	// OutcomeValidation labels requests rejected by schema validation.
	OutcomeValidation = "validation_error"
	// OutcomeScoring labels requests that failed inside the classifier.
	OutcomeScoring = "scoring_error"
)

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flight_delay_api",
			Name:      "predictions_total",
			Help:      "Total number of prediction requests handled, partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	predictionDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "flight_delay_api",
			Name:      "prediction_seconds",
			Help:      "Prediction latency in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)
)

// Register attaches the service collectors to the supplied registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		predictionsTotal,
		predictionDurationSeconds,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObservePrediction records one prediction request outcome and its latency.
func ObservePrediction(duration time.Duration, outcome string) {
	predictionsTotal.WithLabelValues(outcome).Inc()
	if duration < 0 {
		duration = 0
	}
	predictionDurationSeconds.Observe(duration.Seconds())
}
