package district

import (
	"fmt"

	"runoff/domain/core"
	"runoff/domain/party"
)

// Result is the immutable first-round outcome of a district
type Result struct {
	District   District
	Competing  Tally // categories still in the second round, in working order
	Eliminated Tally // parties knocked out in the first round
	Abstention int
}

// NewResult validates the tallies and builds a Result that owns copies of them
func NewResult(d District, competing, eliminated Tally, abstention int) (Result, error) {
	r := Result{
		District:   d,
		Competing:  competing.clone(),
		Eliminated: eliminated.clone(),
		Abstention: abstention,
	}
	if err := r.Validate(); err != nil {
		return Result{}, err
	}
	return r, nil
}

// Validate checks both tallies and the abstention count. A category may be
// listed in both tallies only when it holds no competing votes.
func (r Result) Validate() error {
	if err := r.Competing.Validate(); err != nil {
		return fmt.Errorf("competing results for %s: %w", r.District.ID, err)
	}
	if err := r.Eliminated.Validate(); err != nil {
		return fmt.Errorf("eliminated results for %s: %w", r.District.ID, err)
	}
	if r.Abstention < 0 {
		return core.NewNegativeVotesError(string(party.Abstention), r.Abstention)
	}
	for _, count := range r.Eliminated {
		if count.Category.IsAbstention() {
			return fmt.Errorf("eliminated results for %s: %w: abstention is tracked separately",
				r.District.ID, core.ErrDuplicateCategory)
		}
		if r.Competing.Votes(count.Category) > 0 {
			return fmt.Errorf("%w: %s in %s", core.ErrOverlappingResults, count.Category, r.District.ID)
		}
	}
	return nil
}

// AvailablePools returns the vote pools to redistribute: every eliminated
// party followed by the abstention pool.
func (r Result) AvailablePools() Tally {
	pools := make(Tally, 0, len(r.Eliminated)+1)
	pools = append(pools, r.Eliminated...)
	return append(pools, Count{Category: party.Abstention, Votes: r.Abstention})
}

// TotalVotes is the whole first-round electorate of the district
func (r Result) TotalVotes() int {
	return r.Competing.Total() + r.Eliminated.Total() + r.Abstention
}

// WorkingOrder is the category order of the district's transfer matrix: the
// competing tally order, then any pool category it does not already list.
func (r Result) WorkingOrder() []party.Category {
	order := r.Competing.Categories()
	for _, pool := range r.AvailablePools() {
		if !r.Competing.Has(pool.Category) {
			order = append(order, pool.Category)
		}
	}
	return order
}
