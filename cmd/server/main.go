package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/psanzceste/flight-delay-api/internal/buildinfo"
	"github.com/psanzceste/flight-delay-api/internal/classifier"
	"github.com/psanzceste/flight-delay-api/internal/config"
	"github.com/psanzceste/flight-delay-api/internal/predictor"
	"github.com/psanzceste/flight-delay-api/internal/server"
	"github.com/psanzceste/flight-delay-api/internal/usage"
)

func main() {
	buildinfo.PrintBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewServerConfig()

	// The model must load before the listener opens; without it there is
	// nothing to serve.
	clf, err := classifier.Load(config.ModelPath)
	if err != nil {
		config.Logger.Fatalf("cannot load model from %q: %v", config.ModelPath, err)
	}

	recorder := usage.NewRecorder()
	pred := predictor.NewPredictor(clf, recorder)

	config.Logger.Infof("Server config: Addr=%s, ModelPath=%q", config.Addr, config.ModelPath)

	srv := server.NewServer(pred, recorder, config)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
