// Package server wires the inference pipeline into an HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/psanzceste/flight-delay-api/internal/config"
	"github.com/psanzceste/flight-delay-api/internal/flights"
	"github.com/psanzceste/flight-delay-api/internal/metrics"
	"github.com/psanzceste/flight-delay-api/internal/predictor"
	"github.com/psanzceste/flight-delay-api/internal/server/middleware"
	"github.com/psanzceste/flight-delay-api/internal/usage"
	"github.com/psanzceste/flight-delay-api/model"
)

// Static service metadata for the info endpoint.
const (
	ServiceName        = "Flight Delay ML API"
	ServiceDescription = "binary classifier for flight delay prediction served over HTTP"
	ServiceVersion     = "1.0"
)

// ErrSimulated is the deliberate failure raised by the error-simulation
// endpoint. It exists so clients can exercise error propagation end to end
// without touching the real model; it never shows up on the inference path.
var ErrSimulated = errors.New("this is a simulated error for teaching error handling")

const shutdownTimeout = 5 * time.Second

// Server holds the shared collaborators of all handlers. The predictor and
// usage recorder are safe for concurrent use.
type Server struct {
	Predictor *predictor.Predictor
	Usage     *usage.Recorder
	Config    *config.ServerConfig
}

func NewServer(p *predictor.Predictor, rec *usage.Recorder, config *config.ServerConfig) *Server {
	return &Server{
		Predictor: p,
		Usage:     rec,
		Config:    config,
	}
}

// Run serves requests until the context is canceled, then shuts down
// gracefully.
func (srv *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{Addr: srv.Config.Addr, Handler: srv.Router()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// Router builds the chi router with all routes and middleware attached.
func (srv *Server) Router() chi.Router {
	promReg := prometheus.NewRegistry()
	if err := metrics.Register(promReg); err != nil {
		srv.Config.Logger.Errorf("failed to register prometheus collectors: %v", err)
	}

	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.Config.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware)
	router.Post("/predict", srv.PredictHandler)
	router.Post("/predict-batch", srv.PredictBatchHandler)
	router.Get("/metrics", srv.UsageHandler)
	router.Get("/info", srv.InfoHandler)
	router.Post("/simulate-error", srv.SimulateErrorHandler)
	// Compression is left to CompressMiddleware.
	router.Method(http.MethodGet, "/metrics/prometheus",
		promhttp.HandlerFor(promReg, promhttp.HandlerOpts{DisableCompression: true}))

	return router
}

// PredictHandler scores a single flight record.
func (srv *Server) PredictHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return
	}

	var rec model.FlightRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	start := time.Now()
	result, err := srv.Predictor.Predict(&rec)
	if err != nil {
		srv.writePredictionError(w, err, time.Since(start))
		return
	}
	metrics.ObservePrediction(time.Since(start), metrics.OutcomeSuccess)

	writeJSON(w, srv.Config.Logger, result)
}

// PredictBatchHandler scores an ordered collection of flight records.
// Records failing schema validation are dropped silently; pass
// ?diagnostics=1 to get the dropped count in the response.
func (srv *Server) PredictBatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return
	}

	var recs []model.FlightRecord
	if err := json.NewDecoder(r.Body).Decode(&recs); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	start := time.Now()
	result, dropped, err := srv.Predictor.PredictBatch(recs)
	if err != nil {
		srv.writePredictionError(w, err, time.Since(start))
		return
	}
	metrics.ObservePrediction(time.Since(start), metrics.OutcomeSuccess)

	if r.URL.Query().Get("diagnostics") == "1" {
		result.Dropped = &dropped
	}

	writeJSON(w, srv.Config.Logger, result)
}

// writePredictionError maps pipeline failures to HTTP statuses: schema
// violations are client errors, classifier failures are server errors.
func (srv *Server) writePredictionError(w http.ResponseWriter, err error, elapsed time.Duration) {
	var vErr *flights.ValidationError
	if errors.As(err, &vErr) {
		metrics.ObservePrediction(elapsed, metrics.OutcomeValidation)
		http.Error(w, vErr.Error(), http.StatusUnprocessableEntity)
		return
	}

	srv.Config.Logger.Errorf("prediction failed: %v", err)
	metrics.ObservePrediction(elapsed, metrics.OutcomeScoring)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// UsageHandler reports process-wide usage counters.
func (srv *Server) UsageHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, srv.Config.Logger, srv.Usage.Snapshot())
}

// InfoHandler returns static service metadata.
func (srv *Server) InfoHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, srv.Config.Logger, model.ServiceInfo{
		Service:     ServiceName,
		Description: ServiceDescription,
		Version:     ServiceVersion,
		Features:    []string{"predict", "predict-batch", "metrics", "simulate-error"},
	})
}

type simulateErrorRequest struct {
	RaiseError bool `json:"raise_error"`
}

type simulateErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SimulateErrorHandler deliberately fails on request. Clients use it to
// verify their error handling; it reads and mutates no service state.
func (srv *Server) SimulateErrorHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return
	}

	var req simulateErrorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if req.RaiseError {
		http.Error(w, ErrSimulated.Error(), http.StatusTeapot)
		return
	}

	writeJSON(w, srv.Config.Logger, simulateErrorResponse{
		Status:  "ok",
		Message: "no error was raised",
	})
}

func writeJSON(w http.ResponseWriter, logger *zap.SugaredLogger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to write response JSON: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
