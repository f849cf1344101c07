package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  bool
	}{
		{
			"valid",
			`{"model":"logistic_regression","feature_names":["distance","bad_weather"],"coefficients":[0.001,1.5],"intercept":-1.2}`,
			false,
		},
		{"malformed_json", `{"coefficients":`, true},
		{"no_coefficients", `{"model":"logistic_regression","coefficients":[]}`, true},
		{
			"name_coefficient_mismatch",
			`{"feature_names":["distance"],"coefficients":[0.001,1.5]}`,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(writeArtifact(t, tt.contents))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, m)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
}

func TestProbability(t *testing.T) {
	m, err := New(Artifact{Coefficients: []float64{0, 0}, Intercept: 0})
	require.NoError(t, err)

	// A zero model gives exactly the decision boundary value.
	p, err := m.Probability([]float64{1200, 1})
	require.NoError(t, err)
	require.Equal(t, 0.5, p)
}

func TestProbabilityBounds(t *testing.T) {
	m, err := New(Artifact{Coefficients: []float64{0.002, 2}, Intercept: -3})
	require.NoError(t, err)

	low, err := m.Probability([]float64{100, 0})
	require.NoError(t, err)
	high, err := m.Probability([]float64{5000, 1})
	require.NoError(t, err)

	require.Greater(t, high, low)
	require.GreaterOrEqual(t, low, 0.0)
	require.LessOrEqual(t, high, 1.0)
}

func TestProbabilityVectorLength(t *testing.T) {
	m, err := New(Artifact{Coefficients: []float64{0.002, 2}, Intercept: -3})
	require.NoError(t, err)

	_, err = m.Probability([]float64{1200})
	require.Error(t, err)

	_, err = m.Probability([]float64{1200, 1, 7})
	require.Error(t, err)
}
