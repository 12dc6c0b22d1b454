package testkit

import (
	"fmt"
	"math/rand/v2"

	"runoff/domain/district"
	"runoff/domain/party"
)

// ElectionGeneratorConfig configures the synthetic first-round generator
type ElectionGeneratorConfig struct {
	DistrictCount int    `json:"district_count"`
	MinElectorate int    `json:"min_electorate"`
	MaxElectorate int    `json:"max_electorate"`
	Seed          uint64 `json:"seed"`
}

// DefaultElectionConfig returns sensible defaults for synthetic districts
func DefaultElectionConfig() ElectionGeneratorConfig {
	return ElectionGeneratorConfig{
		DistrictCount: 577,
		MinElectorate: 60000,
		MaxElectorate: 110000,
		Seed:          42,
	}
}

// ElectionGenerator generates first-round results where two or three
// parties qualify for the second round
type ElectionGenerator struct {
	config ElectionGeneratorConfig
	rng    *rand.Rand
}

// NewElectionGenerator creates a new election generator
func NewElectionGenerator(config ElectionGeneratorConfig) *ElectionGenerator {
	return &ElectionGenerator{
		config: config,
		rng:    rand.New(rand.NewPCG(config.Seed, 0x5eed)),
	}
}

// GenerateResults generates one result per district
func (g *ElectionGenerator) GenerateResults() ([]district.Result, error) {
	results := make([]district.Result, 0, g.config.DistrictCount)
	for i := 0; i < g.config.DistrictCount; i++ {
		r, err := g.generateDistrict(i)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (g *ElectionGenerator) generateDistrict(i int) (district.Result, error) {
	spread := g.config.MaxElectorate - g.config.MinElectorate
	electorate := g.config.MinElectorate
	if spread > 0 {
		electorate += g.rng.IntN(spread)
	}
	turnout := 0.5 + 0.2*g.rng.Float64()
	abstention := int(float64(electorate) * (1 - turnout))
	cast := electorate - abstention

	parties := party.Parties()
	weights := make([]float64, len(parties))
	var total float64
	for j := range weights {
		weights[j] = 0.05 + g.rng.Float64()
		total += weights[j]
	}

	g.rng.Shuffle(len(parties), func(a, b int) {
		parties[a], parties[b] = parties[b], parties[a]
		weights[a], weights[b] = weights[b], weights[a]
	})
	qualified := 2 + g.rng.IntN(2)

	var competing, eliminated district.Tally
	assigned := 0
	for j, c := range parties {
		votes := int(float64(cast) * weights[j] / total)
		if j == len(parties)-1 {
			votes = cast - assigned
		}
		assigned += votes
		if j < qualified {
			competing = append(competing, district.Count{Category: c, Votes: votes})
		} else {
			eliminated = append(eliminated, district.Count{Category: c, Votes: votes})
		}
	}

	d := district.District{ID: fmt.Sprintf("%02d%02d", 1+i/10, 1+i%10), Name: fmt.Sprintf("Synthetic %d", i+1)}
	return district.NewResult(d, competing, eliminated, abstention)
}
