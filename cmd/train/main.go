// Command train fits the flight delay classifier on a synthetic dataset and
// writes the artifact consumed by cmd/server. Delays get more likely for
// long flights and in bad weather; the fitted model recovers that pattern.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/psanzceste/flight-delay-api/internal/classifier"
)

const (
	sampleCount  = 300
	epochs       = 2000
	learningRate = 0.1
)

func main() {
	out := flag.String("o", "flight_delay_model.json", "output artifact path")
	seed := flag.Int64("seed", 0, "random seed for the synthetic dataset")
	flag.Parse()

	features, labels := syntheticDataset(rand.New(rand.NewSource(*seed)))
	coefficients, intercept := fitLogistic(features, labels)

	art := classifier.Artifact{
		Model:        "logistic_regression",
		FeatureNames: []string{"distance", "bad_weather"},
		Coefficients: coefficients,
		Intercept:    intercept,
	}

	b, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		log.Fatalf("encode artifact: %v", err)
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		log.Fatalf("write artifact: %v", err)
	}

	log.Printf("model written to %s (coefficients=%v intercept=%v)", *out, coefficients, intercept)
}

// syntheticDataset draws flights whose delay probability starts at 0.2,
// +0.3 for distances over 1500 km and +0.4 under bad weather.
func syntheticDataset(rng *rand.Rand) ([][]float64, []float64) {
	features := make([][]float64, 0, sampleCount)
	labels := make([]float64, 0, sampleCount)

	for i := 0; i < sampleCount; i++ {
		distance := float64(200 + rng.Intn(2800))
		badWeather := float64(rng.Intn(2))

		delayProb := 0.2
		if distance > 1500 {
			delayProb += 0.3
		}
		if badWeather == 1 {
			delayProb += 0.4
		}

		label := 0.0
		if rng.Float64() < delayProb {
			label = 1.0
		}

		features = append(features, []float64{distance, badWeather})
		labels = append(labels, label)
	}
	return features, labels
}

// fitLogistic runs batch gradient descent on standardized features, then
// rescales the solution back to raw feature units so the server can score
// raw [distance, bad_weather] vectors directly.
func fitLogistic(features [][]float64, labels []float64) ([]float64, float64) {
	n := len(features)
	dims := len(features[0])

	means := make([]float64, dims)
	stds := make([]float64, dims)
	for j := 0; j < dims; j++ {
		for i := 0; i < n; i++ {
			means[j] += features[i][j]
		}
		means[j] /= float64(n)

		for i := 0; i < n; i++ {
			d := features[i][j] - means[j]
			stds[j] += d * d
		}
		stds[j] = math.Sqrt(stds[j] / float64(n))
		if stds[j] == 0 {
			stds[j] = 1
		}
	}

	scaled := make([][]float64, n)
	for i := range features {
		row := make([]float64, dims)
		for j := 0; j < dims; j++ {
			row[j] = (features[i][j] - means[j]) / stds[j]
		}
		scaled[i] = row
	}

	weights := make([]float64, dims)
	bias := 0.0
	for epoch := 0; epoch < epochs; epoch++ {
		gradW := make([]float64, dims)
		gradB := 0.0
		for i := 0; i < n; i++ {
			z := bias
			for j := 0; j < dims; j++ {
				z += weights[j] * scaled[i][j]
			}
			diff := sigmoid(z) - labels[i]
			for j := 0; j < dims; j++ {
				gradW[j] += diff * scaled[i][j]
			}
			gradB += diff
		}
		for j := 0; j < dims; j++ {
			weights[j] -= learningRate * gradW[j] / float64(n)
		}
		bias -= learningRate * gradB / float64(n)
	}

	raw := make([]float64, dims)
	intercept := bias
	for j := 0; j < dims; j++ {
		raw[j] = weights[j] / stds[j]
		intercept -= weights[j] * means[j] / stds[j]
	}
	return raw, intercept
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
