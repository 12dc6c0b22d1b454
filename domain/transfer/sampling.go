package transfer

import (
	"fmt"
	"math"
	"math/rand/v2"

	"runoff/domain/core"
	"runoff/domain/party"
	"runoff/internal/sampling"
)

// SampleFromHyperparameters draws one realization of the propensities: each
// stored weight p is replaced by a draw from a normal distribution centred on
// p with the given spread, truncated to [0,1]. Entries are visited in
// party.DefaultOrder so a seeded rng always yields the same matrix.
func SampleFromHyperparameters(hyperparameters Matrix, variance float64, rng *rand.Rand) (Matrix, error) {
	if math.IsNaN(variance) || variance < 0 {
		return nil, fmt.Errorf("%w: %g", core.ErrInvalidVariance, variance)
	}
	if err := hyperparameters.Validate(); err != nil {
		return nil, fmt.Errorf("hyperparameters: %w", err)
	}

	order := party.DefaultOrder()
	sampled := make(Matrix, len(hyperparameters))
	for _, src := range order {
		row, ok := hyperparameters[src]
		if !ok {
			continue
		}
		sampled[src] = make(map[party.Category]float64, len(row))
		for _, dst := range order {
			p, ok := row[dst]
			if !ok {
				continue
			}
			w, err := sampling.TruncatedNormal(p, variance, 0, 1, rng)
			if err != nil {
				return nil, fmt.Errorf("sample %s -> %s: %w", src, dst, err)
			}
			sampled[src][dst] = w
		}
	}
	return sampled, nil
}
