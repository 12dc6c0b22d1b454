package sampling

import (
	"fmt"
	"math"
	"math/rand/v2"

	"runoff/domain/core"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ProbabilityTolerance bounds how far a probability row may sum from 1
const ProbabilityTolerance = 1e-9

// Multinomial splits n trials across len(probs) categories. The draw is a
// chain of conditional binomials; the last category with positive
// probability absorbs the remainder, so the counts always sum to n.
func Multinomial(n int, probs []float64, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d trials", core.ErrNegativeVotes, n)
	}
	last := -1
	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: probability %d = %g", core.ErrInvalidPropensity, i, p)
		}
		if p > 0 {
			last = i
		}
	}

	counts := make([]int, len(probs))
	if n == 0 {
		return counts, nil
	}
	if sum := floats.Sum(probs); math.Abs(sum-1) > ProbabilityTolerance {
		return nil, fmt.Errorf("%w: probabilities sum to %g", core.ErrInvalidPropensity, sum)
	}

	remaining := n
	mass := 1.0
	for i, p := range probs {
		if remaining == 0 {
			break
		}
		if p == 0 {
			continue
		}
		if i == last {
			counts[i] = remaining
			break
		}

		conditional := p / mass
		var drawn int
		switch {
		case conditional >= 1:
			drawn = remaining
		default:
			binomial := distuv.Binomial{N: float64(remaining), P: conditional, Src: rng}
			drawn = int(math.Round(binomial.Rand()))
		}
		if drawn > remaining {
			drawn = remaining
		}

		counts[i] = drawn
		remaining -= drawn
		mass -= p
	}

	return counts, nil
}
