package main

import (
	"fmt"

	"go.uber.org/zap"

	"namesplit/internal/config"
	"namesplit/internal/logging"
)

// loadConfig reads the config file and lets the persistent flags override it.
// A --config path must exist; without one, namesplit.yaml in the working
// directory is used when present.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load(config.DefaultFile)
	}
	if err != nil {
		return nil, err
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}
	if o.logFile != "" {
		cfg.Logging.File = o.logFile
	}
	return cfg, nil
}

func (o *globalOptions) logger(cfg *config.Config, runID string) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Logging, o.verbose, runID)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return logger, nil
}
