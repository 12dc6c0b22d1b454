package ports

import (
	"context"
	"math/rand/v2"

	"runoff/domain/core"
)

// RNGPort hands out independent, reproducible random streams so parallel
// units of work never share a generator
type RNGPort interface {
	// SeededStream creates a deterministic generator for a named operation
	SeededStream(ctx context.Context, name string, seed uint64) (*rand.Rand, error)

	// Stream creates the generator used to simulate one district under one
	// scenario. The same triple always yields the same sequence.
	Stream(ctx context.Context, scenarioID core.ScenarioID, districtID string, baseSeed uint64) (*rand.Rand, error)
}
