// Package flights validates inbound flight records and encodes them as the
// feature vector the classifier consumes.
package flights

import (
	"errors"
	"fmt"

	"github.com/psanzceste/flight-delay-api/model"
)

// Valid distance range in kilometers.
const (
	MinDistance = 100
	MaxDistance = 5000
)

var (
	ErrEmptyFlightID      = errors.New("flight_id must not be empty")
	ErrDistanceOutOfRange = fmt.Errorf("distance must be between %d and %d", MinDistance, MaxDistance)
)

// ValidationError reports which field of a flight record violated the
// request schema. It is a client-side failure and never reaches the scorer.
type ValidationError struct {
	Field  string
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// CheckRecord validates a record against the request schema, reporting the
// first violation found.
func CheckRecord(rec *model.FlightRecord) error {
	if rec.FlightID == "" {
		return &ValidationError{Field: "flight_id", Reason: ErrEmptyFlightID}
	}
	if rec.Distance < MinDistance || rec.Distance > MaxDistance {
		return &ValidationError{Field: "distance", Reason: ErrDistanceOutOfRange}
	}
	return nil
}

// Features encodes a validated record as the fixed-order vector the
// classifier expects: [distance, bad_weather as 0 or 1].
func Features(rec *model.FlightRecord) []float64 {
	weather := 0.0
	if rec.BadWeather {
		weather = 1.0
	}
	return []float64{float64(rec.Distance), weather}
}
