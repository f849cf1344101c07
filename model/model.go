// Package model contains core data types for the project.
package model

// FlightRecord describes one flight to score. Distance is in kilometers;
// bounds are enforced by the flights package before any scoring happens.
type FlightRecord struct {
	FlightID   string `json:"flight_id"`   // Caller-supplied flight identifier.
	Distance   int    `json:"distance"`    // Flight distance in km, valid range [100, 5000].
	BadWeather bool   `json:"bad_weather"` // Whether bad weather is expected.
}

// PredictionResult is the outcome of scoring one FlightRecord.
type PredictionResult struct {
	FlightID         string  `json:"flight_id"`
	DelayProbability float64 `json:"delay_probability"` // Positive-class probability in [0, 1].
	Delayed          bool    `json:"delayed"`           // True when DelayProbability is strictly above 0.5.
}

// BatchResult aggregates predictions in input order. Count is the number of
// records that were successfully scored; records failing schema validation
// are absent from Predictions and do not contribute to Count. Dropped is
// only populated when the caller asked for diagnostics.
type BatchResult struct {
	Predictions []PredictionResult `json:"predictions"`
	Count       int                `json:"count"`
	Dropped     *int               `json:"dropped,omitempty"`
}

// UsageReport is the response shape of the usage metrics endpoint.
type UsageReport struct {
	TotalPredictions int64 `json:"total_predictions"`
	UptimeSeconds    int64 `json:"uptime_seconds"`
}

// ServiceInfo is the static metadata returned by the info endpoint.
type ServiceInfo struct {
	Service     string   `json:"service"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Features    []string `json:"features"`
}
