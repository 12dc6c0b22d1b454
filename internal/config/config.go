package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"runoff/internal/errors"
)

// Shared validator instance
var validate = validator.New()

// Config represents the complete application configuration
type Config struct {
	Model   ModelConfig
	Logging LoggingConfig
}

// ModelConfig drives construction of a transfer model
type ModelConfig struct {
	// Variance is the spread of the truncated normal used to perturb each
	// hyperparameter. Zero reproduces the hyperparameters exactly.
	Variance        float64 `env:"RUNOFF_VARIANCE" envDefault:"0.2" validate:"gte=0"`
	FixedParameters bool    `env:"RUNOFF_FIXED_PARAMETERS" envDefault:"false"`
	// Seed 0 means draw a fresh seed per model
	Seed                uint64 `env:"RUNOFF_SEED" envDefault:"0"`
	MaxConcurrency      int    `env:"RUNOFF_MAX_CONCURRENCY" envDefault:"8" validate:"min=1,max=256"`
	HyperparametersFile string `env:"RUNOFF_HYPERPARAMETERS_FILE"`
	// ScenarioID pins the realization name; empty generates one per model
	ScenarioID string `env:"RUNOFF_SCENARIO_ID"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"INFO" validate:"oneof=ERROR WARN INFO DEBUG TRACE"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid(err.Error()), "failed to parse environment")
	}
	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// LoadWithDotEnv seeds the environment from the given .env files, then loads.
// Variables already set in the process environment win.
func LoadWithDotEnv(paths ...string) (*Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid(err.Error()), "failed to read .env")
	}
	return Load()
}

func validateConfig(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	return nil
}
