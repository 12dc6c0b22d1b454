package testkit

import (
	"runoff/adapters/rng"
	"runoff/domain/district"
	"runoff/domain/party"
	"runoff/domain/transfer"
	"runoff/ports"
)

// TestKit provides testing utilities and fixtures
type TestKit struct {
	rngAdapter *rng.StreamAdapter
}

// NewTestKit creates a new test kit instance
func NewTestKit() *TestKit {
	return &TestKit{rngAdapter: rng.NewStreamAdapter()}
}

// RNGAdapter returns the deterministic stream adapter
func (k *TestKit) RNGAdapter() ports.RNGPort {
	return k.rngAdapter
}

// UniformHyperparameters sets every party -> party propensity to p and every
// category -> abstention propensity to abs.
func UniformHyperparameters(p, abs float64) transfer.Matrix {
	m := make(transfer.Matrix)
	for _, src := range party.SecondRoundCategories() {
		m[src] = make(map[party.Category]float64)
		for _, dst := range party.Parties() {
			if dst != src {
				m[src][dst] = p
			}
		}
		if !src.IsAbstention() {
			m[src][party.Abstention] = abs
		}
	}
	return m
}

// Hyperparameters returns a plausible national propensity matrix
func Hyperparameters() transfer.Matrix {
	return transfer.Matrix{
		party.NFP:        {party.LR: 0.05, party.RN: 0.03, party.ENS: 0.45, party.DIV: 0.1, party.Abstention: 0.35},
		party.LR:         {party.NFP: 0.08, party.RN: 0.35, party.ENS: 0.4, party.DIV: 0.2, party.Abstention: 0.3},
		party.RN:         {party.NFP: 0.05, party.LR: 0.3, party.ENS: 0.1, party.DIV: 0.1, party.Abstention: 0.45},
		party.ENS:        {party.NFP: 0.3, party.LR: 0.4, party.RN: 0.08, party.DIV: 0.2, party.Abstention: 0.25},
		party.DIV:        {party.NFP: 0.2, party.LR: 0.25, party.RN: 0.2, party.ENS: 0.25, party.Abstention: 0.3},
		party.Abstention: {party.NFP: 0.06, party.LR: 0.03, party.RN: 0.07, party.ENS: 0.03, party.DIV: 0.01},
	}
}

// MustResult builds a district result and panics on invalid input
func MustResult(id string, competing, eliminated district.Tally, abstention int) district.Result {
	r, err := district.NewResult(district.District{ID: id, Name: "District " + id}, competing, eliminated, abstention)
	if err != nil {
		panic(err)
	}
	return r
}
