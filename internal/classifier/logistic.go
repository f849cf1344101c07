package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Artifact is the on-disk representation of a trained model, produced by
// cmd/train.
type Artifact struct {
	Model        string    `json:"model"`
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// LogisticModel is a binary logistic regression classifier over raw
// (unscaled) feature values. It holds no mutable state after construction.
type LogisticModel struct {
	coefficients []float64
	intercept    float64
}

// Load reads and validates a model artifact from disk. A failure here must
// abort startup: the server never accepts requests without a loaded model.
func Load(path string) (*LogisticModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var art Artifact
	if err := json.Unmarshal(b, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}

	return New(art)
}

// New builds a LogisticModel from an already decoded artifact.
func New(art Artifact) (*LogisticModel, error) {
	if len(art.Coefficients) == 0 {
		return nil, fmt.Errorf("model artifact has no coefficients")
	}
	if len(art.FeatureNames) != 0 && len(art.FeatureNames) != len(art.Coefficients) {
		return nil, fmt.Errorf("model artifact has %d feature names for %d coefficients",
			len(art.FeatureNames), len(art.Coefficients))
	}

	return &LogisticModel{
		coefficients: append([]float64(nil), art.Coefficients...),
		intercept:    art.Intercept,
	}, nil
}

// Probability returns the positive-class probability for the given feature
// vector.
func (m *LogisticModel) Probability(features []float64) (float64, error) {
	if len(features) != len(m.coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.coefficients), len(features))
	}

	z := m.intercept
	for i, f := range features {
		z += m.coefficients[i] * f
	}
	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
