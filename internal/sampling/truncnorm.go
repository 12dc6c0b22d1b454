// Package sampling draws the random quantities of the transfer model on top
// of gonum's univariate distributions.
package sampling

import (
	"fmt"
	"math"
	"math/rand/v2"

	"runoff/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// TruncatedNormal draws one value from a normal distribution with the given
// mean and spread, truncated to [lo, hi], by inverting the CDF over the
// admissible band. A zero spread returns the mean clamped into the interval.
func TruncatedNormal(mean, spread, lo, hi float64, rng *rand.Rand) (float64, error) {
	if math.IsNaN(spread) || spread < 0 {
		return 0, fmt.Errorf("%w: spread %g", core.ErrInvalidVariance, spread)
	}
	if math.IsNaN(mean) {
		return 0, fmt.Errorf("%w: mean is NaN", core.ErrInvalidPropensity)
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: empty interval [%g, %g]", core.ErrInvalidVariance, lo, hi)
	}
	if spread == 0 || lo == hi {
		return clamp(mean, lo, hi), nil
	}

	normal := distuv.Normal{Mu: mean, Sigma: spread}
	cdfLo, cdfHi := normal.CDF(lo), normal.CDF(hi)
	if cdfHi-cdfLo <= 0 {
		// Both bounds sit in the same numerically flat tail.
		return clamp(mean, lo, hi), nil
	}

	u := cdfLo + (cdfHi-cdfLo)*rng.Float64()
	return clamp(normal.Quantile(u), lo, hi), nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
