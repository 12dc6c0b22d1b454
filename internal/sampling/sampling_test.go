package sampling

import (
	"math/rand/v2"
	"testing"

	"runoff/domain/core"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestMultinomial_ConservesTrials(t *testing.T) {
	rng := newRNG(42)
	rows := [][]float64{
		{0.5, 0.5},
		{0.1, 0.2, 0.3, 0.4},
		{0, 0.25, 0, 0.75, 0},
		{1, 0, 0},
		{0, 0, 1},
	}

	for _, probs := range rows {
		for _, n := range []int{0, 1, 7, 500, 1000, 123457} {
			counts, err := Multinomial(n, probs, rng)
			require.NoError(t, err)
			require.Len(t, counts, len(probs))

			total := 0
			for i, c := range counts {
				assert.GreaterOrEqual(t, c, 0)
				if probs[i] == 0 {
					assert.Zero(t, c, "zero-probability category %d received votes", i)
				}
				total += c
			}
			assert.Equal(t, n, total, "probs=%v n=%d", probs, n)
		}
	}
}

func TestMultinomial_MatchesExpectation(t *testing.T) {
	rng := newRNG(7)
	probs := []float64{0.2, 0.5, 0.3}
	const n, draws = 1000, 400

	shares := make([][]float64, len(probs))
	for d := 0; d < draws; d++ {
		counts, err := Multinomial(n, probs, rng)
		require.NoError(t, err)
		for i, c := range counts {
			shares[i] = append(shares[i], float64(c)/n)
		}
	}

	for i, p := range probs {
		mean, err := stats.Mean(shares[i])
		require.NoError(t, err)
		assert.InDelta(t, p, mean, 0.01, "category %d", i)
	}
}

func TestMultinomial_Errors(t *testing.T) {
	rng := newRNG(1)

	_, err := Multinomial(-1, []float64{1}, rng)
	assert.ErrorIs(t, err, core.ErrNegativeVotes)

	_, err = Multinomial(10, []float64{0.5, 0.2}, rng)
	assert.ErrorIs(t, err, core.ErrInvalidPropensity)

	_, err = Multinomial(10, []float64{0, 0}, rng)
	assert.ErrorIs(t, err, core.ErrInvalidPropensity)

	_, err = Multinomial(10, []float64{1.5, -0.5}, rng)
	assert.ErrorIs(t, err, core.ErrInvalidPropensity)
}

func TestMultinomial_ZeroTrialsOnZeroRow(t *testing.T) {
	counts, err := Multinomial(0, []float64{0, 0, 0}, newRNG(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, counts)
}

func TestTruncatedNormal_StaysInBounds(t *testing.T) {
	rng := newRNG(11)
	for _, mean := range []float64{0, 0.01, 0.25, 0.5, 0.99, 1} {
		for _, spread := range []float64{0.001, 0.2, 1, 10} {
			for i := 0; i < 200; i++ {
				x, err := TruncatedNormal(mean, spread, 0, 1, rng)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, x, 0.0)
				assert.LessOrEqual(t, x, 1.0)
			}
		}
	}
}

func TestTruncatedNormal_ZeroSpreadReturnsMean(t *testing.T) {
	rng := newRNG(5)
	for _, mean := range []float64{0, 0.3, 1} {
		x, err := TruncatedNormal(mean, 0, 0, 1, rng)
		require.NoError(t, err)
		assert.Equal(t, mean, x)
	}
}

func TestTruncatedNormal_CentersOnMean(t *testing.T) {
	rng := newRNG(99)
	samples := make([]float64, 2000)
	for i := range samples {
		x, err := TruncatedNormal(0.5, 0.05, 0, 1, rng)
		require.NoError(t, err)
		samples[i] = x
	}
	mean, err := stats.Mean(samples)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean, 0.01)
}

func TestTruncatedNormal_Errors(t *testing.T) {
	rng := newRNG(2)
	_, err := TruncatedNormal(0.5, -0.1, 0, 1, rng)
	assert.ErrorIs(t, err, core.ErrInvalidVariance)

	_, err = TruncatedNormal(0.5, 0.1, 1, 0, rng)
	assert.ErrorIs(t, err, core.ErrInvalidVariance)
}
