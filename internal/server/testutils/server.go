// Package testutils builds fully wired test servers around a deterministic
// stub classifier, so handler tests never touch a real model artifact.
package testutils

import (
	"github.com/psanzceste/flight-delay-api/internal/config"
	"github.com/psanzceste/flight-delay-api/internal/predictor"
	"github.com/psanzceste/flight-delay-api/internal/server"
	"github.com/psanzceste/flight-delay-api/internal/usage"
	"go.uber.org/zap"
)

// StubClassifier returns a fixed probability, or a fixed error when Err is
// set.
type StubClassifier struct {
	P   float64
	Err error
}

func (s *StubClassifier) Probability(features []float64) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.P, nil
}

// NewTestServer wires a server around the given classifier stub and returns
// it together with its usage recorder for counter assertions.
func NewTestServer(clf *StubClassifier) (*server.Server, *usage.Recorder) {
	rec := usage.NewRecorder()
	srv := server.NewServer(
		predictor.NewPredictor(clf, rec),
		rec,
		&config.ServerConfig{
			Addr:   "localhost:0",
			Logger: zap.NewNop().Sugar(),
		},
	)
	return srv, rec
}
