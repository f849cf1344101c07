// Package predictor runs the inference pipeline: schema validation, feature
// construction, scoring and usage bookkeeping.
package predictor

import (
	"fmt"

	"github.com/psanzceste/flight-delay-api/internal/classifier"
	"github.com/psanzceste/flight-delay-api/internal/flights"
	"github.com/psanzceste/flight-delay-api/internal/usage"
	"github.com/psanzceste/flight-delay-api/model"
)

// DelayThreshold is the decision cutoff. A flight is delayed only when its
// probability is strictly greater than this value; exactly 0.5 is not delayed.
const DelayThreshold = 0.5

// ScoringError wraps a classifier invocation failure. Schema validation
// failures never produce one; those surface as *flights.ValidationError.
type ScoringError struct {
	Err error
}

func (e *ScoringError) Error() string { return fmt.Sprintf("scoring failed: %v", e.Err) }

func (e *ScoringError) Unwrap() error { return e.Err }

// Predictor scores flight records with a shared read-only classifier and
// reports every success to the usage recorder.
type Predictor struct {
	clf   classifier.Classifier
	usage *usage.Recorder
}

func NewPredictor(clf classifier.Classifier, rec *usage.Recorder) *Predictor {
	return &Predictor{clf: clf, usage: rec}
}

// Predict validates and scores a single record. The usage counter moves
// only on success; validation and scoring failures leave it untouched.
func (p *Predictor) Predict(rec *model.FlightRecord) (model.PredictionResult, error) {
	if err := flights.CheckRecord(rec); err != nil {
		return model.PredictionResult{}, err
	}
	return p.score(rec)
}

// score runs an already validated record through the classifier.
func (p *Predictor) score(rec *model.FlightRecord) (model.PredictionResult, error) {
	probability, err := p.clf.Probability(flights.Features(rec))
	if err != nil {
		return model.PredictionResult{}, &ScoringError{Err: err}
	}

	p.usage.RecordSuccess()

	return model.PredictionResult{
		FlightID:         rec.FlightID,
		DelayProbability: probability,
		Delayed:          probability > DelayThreshold,
	}, nil
}

// PredictBatch scores records in input order. Records failing schema
// validation are dropped from the output without individual error
// reporting; the returned dropped count lets callers opt into diagnostics.
// A classifier failure aborts the whole batch, keeping counter increments
// already made for earlier records.
func (p *Predictor) PredictBatch(recs []model.FlightRecord) (model.BatchResult, int, error) {
	result := model.BatchResult{Predictions: []model.PredictionResult{}}

	dropped := 0
	for i := range recs {
		if err := flights.CheckRecord(&recs[i]); err != nil {
			dropped++
			continue
		}

		pred, err := p.score(&recs[i])
		if err != nil {
			return model.BatchResult{}, dropped, err
		}
		result.Predictions = append(result.Predictions, pred)
	}

	result.Count = len(result.Predictions)
	return result, dropped, nil
}
