// Package classifier loads the trained delay model artifact and scores
// feature vectors against it.
package classifier

// Classifier produces the positive-class probability for one feature
// vector. Implementations must be safe for concurrent use once loaded.
type Classifier interface {
	Probability(features []float64) (float64, error)
}
