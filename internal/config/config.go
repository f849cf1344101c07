// Package config provides application configuration structures and helpers.
package config

import (
	"flag"
	"os"

	"go.uber.org/zap"
)

// ServerConfig holds the configuration settings for the server.
type ServerConfig struct {
	Addr      string // Server address
	ModelPath string // Path to the trained classifier artifact
	Logger    *zap.SugaredLogger
}

// NewServerConfig creates and returns a new ServerConfig. Precedence, lowest
// to highest: defaults, JSON config file, command-line flags, environment.
func NewServerConfig() *ServerConfig {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "server.log"}
	logger := zap.Must(logCfg.Build())

	// 0) defaults
	cfg := &ServerConfig{
		Addr:      "localhost:8080",
		ModelPath: "flight_delay_model.json",
	}

	// 1) flags
	var fAddr strFlag
	fAddr.v = cfg.Addr
	var fModel strFlag
	fModel.v = cfg.ModelPath
	var fConf strFlag // -c / -config

	flag.Var(&fAddr, "a", "HTTP server address")
	flag.Var(&fModel, "m", "path to the model artifact")
	flag.Var(&fConf, "c", "Path to JSON config file")
	flag.Var(&fConf, "config", "Path to JSON config file (alias)")
	flag.Parse()

	cfg.Addr = fAddr.v
	cfg.ModelPath = fModel.v

	// 2) JSON (lowest priority after defaults)
	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}

	if fConf.v != "" {
		if js, err := loadServerJSON(fConf.v); err == nil {
			if js.Address != nil && !fAddr.set {
				cfg.Addr = *js.Address
			}
			if js.ModelPath != nil && !fModel.set {
				cfg.ModelPath = *js.ModelPath
			}
		}
	}

	// 3) environment wins
	readServerEnvironment(cfg)

	cfg.Logger = logger.Sugar()
	return cfg
}

func readServerEnvironment(cfg *ServerConfig) {
	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.Addr = addr
	}

	if mp := os.Getenv("MODEL_PATH"); mp != "" {
		cfg.ModelPath = mp
	}
}
