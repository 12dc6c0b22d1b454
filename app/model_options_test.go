package app

import (
	"testing"

	"runoff/domain/core"
	"runoff/internal"
	"runoff/internal/config"
	"runoff/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		Model: config.ModelConfig{
			Variance:        0.1,
			FixedParameters: true,
			Seed:            77,
			MaxConcurrency:  4,
		},
		Logging: config.LoggingConfig{Level: "DEBUG"},
	}

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.1, opts.Variance)
	assert.True(t, opts.FixedParameters)
	assert.Equal(t, uint64(77), opts.Seed)
	assert.Equal(t, 4, opts.MaxConcurrency)
	assert.Equal(t, internal.LogLevelDebug, opts.Logger.GetLevel())
	assert.Empty(t, opts.ScenarioID)
}

func TestOptionsFromConfig_ScenarioID(t *testing.T) {
	cfg := &config.Config{Model: config.ModelConfig{MaxConcurrency: 1, ScenarioID: "legislatives-2024"}}
	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, core.ScenarioID("legislatives-2024"), opts.ScenarioID)

	cfg.Model.ScenarioID = "   "
	_, err = OptionsFromConfig(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestHyperparameterSourceFromConfig(t *testing.T) {
	_, err := HyperparameterSourceFromConfig(&config.Config{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	cfg := &config.Config{Model: config.ModelConfig{HyperparametersFile: hyperparametersFixture}}
	src, err := HyperparameterSourceFromConfig(cfg)
	require.NoError(t, err)
	assert.NotNil(t, src)
}

func TestNewSeed(t *testing.T) {
	a, err := newSeed()
	assert.NoError(t, err)
	b, err := newSeed()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
