package rng

import (
	"context"
	"math/rand/v2"

	"runoff/domain/core"
	"runoff/ports"
)

var _ ports.RNGPort = (*StreamAdapter)(nil)

// StreamAdapter derives PCG generators from a base seed and the name of the
// unit of work
type StreamAdapter struct{}

// NewStreamAdapter creates a new stream adapter
func NewStreamAdapter() *StreamAdapter {
	return &StreamAdapter{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (a *StreamAdapter) SeededStream(ctx context.Context, name string, seed uint64) (*rand.Rand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(seed, uint64(hashString(name)))), nil
}

// Stream creates the generator for one district of one scenario. Scenario and
// district are hashed separately into the two PCG words so that swapping them
// does not collide.
func (a *StreamAdapter) Stream(ctx context.Context, scenarioID core.ScenarioID, districtID string, baseSeed uint64) (*rand.Rand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hi := baseSeed ^ uint64(hashString(scenarioID.String()))<<32
	lo := uint64(hashString(districtID)) | uint64(hashString("district:"+districtID))<<32
	return rand.New(rand.NewPCG(hi, lo)), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2
	}
	return hash
}
