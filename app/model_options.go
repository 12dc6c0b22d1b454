package app

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"runoff/adapters/yaml"
	"runoff/domain/core"
	"runoff/internal"
	"runoff/internal/config"
	"runoff/internal/errors"
	"runoff/ports"
)

// ModelOptions controls how a TransferModel realizes its scenario
type ModelOptions struct {
	// Variance is the spread of the truncated normal around each hyperparameter
	Variance float64
	// FixedParameters reuses the hyperparameters as-is instead of drawing
	FixedParameters bool
	// Seed feeds every random stream of the model; 0 draws one from crypto/rand
	Seed uint64
	// ScenarioID names the realization; empty generates a fresh one. Fix it
	// together with Seed to reproduce a scenario exactly.
	ScenarioID core.ScenarioID
	// MaxConcurrency bounds the districts predicted at once by PredictAll
	MaxConcurrency int
	Logger         *internal.Logger
}

// DefaultModelOptions returns the options used when nothing is configured
func DefaultModelOptions() ModelOptions {
	return ModelOptions{
		Variance:       0.2,
		MaxConcurrency: 8,
	}
}

// OptionsFromConfig maps loaded configuration onto model options
func OptionsFromConfig(cfg *config.Config) (ModelOptions, error) {
	opts := ModelOptions{
		Variance:        cfg.Model.Variance,
		FixedParameters: cfg.Model.FixedParameters,
		Seed:            cfg.Model.Seed,
		MaxConcurrency:  cfg.Model.MaxConcurrency,
		Logger:          internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level)),
	}
	if cfg.Model.ScenarioID != "" {
		id, err := core.ParseScenarioID(cfg.Model.ScenarioID)
		if err != nil {
			return ModelOptions{}, errors.Wrap(errors.ConfigInvalid(err.Error()), "invalid RUNOFF_SCENARIO_ID")
		}
		opts.ScenarioID = id
	}
	return opts, nil
}

// HyperparameterSourceFromConfig opens the configured hyperparameter document
func HyperparameterSourceFromConfig(cfg *config.Config) (ports.HyperparameterSource, error) {
	if cfg.Model.HyperparametersFile == "" {
		return nil, errors.ConfigInvalid("RUNOFF_HYPERPARAMETERS_FILE is not set")
	}
	return yaml.NewFileSource(cfg.Model.HyperparametersFile), nil
}

// newSeed generates a random seed using crypto/rand
func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
