package district

import (
	"fmt"

	"runoff/domain/core"
	"runoff/domain/party"
)

// Count is the number of votes held by one category
type Count struct {
	Category party.Category `json:"category" yaml:"category"`
	Votes    int            `json:"votes" yaml:"votes"`
}

// Tally is an ordered list of vote counts. The order is significant: it
// drives the per-district matrix layout and the winner tie-break.
type Tally []Count

// Votes returns the votes of c, or 0 when c is absent
func (t Tally) Votes(c party.Category) int {
	for _, count := range t {
		if count.Category == c {
			return count.Votes
		}
	}
	return 0
}

// Has reports whether c appears in the tally
func (t Tally) Has(c party.Category) bool {
	for _, count := range t {
		if count.Category == c {
			return true
		}
	}
	return false
}

// Categories returns the categories in tally order
func (t Tally) Categories() []party.Category {
	categories := make([]party.Category, len(t))
	for i, count := range t {
		categories[i] = count.Category
	}
	return categories
}

// Total sums every count
func (t Tally) Total() int {
	total := 0
	for _, count := range t {
		total += count.Votes
	}
	return total
}

// Validate checks that every category is known, appears once, and holds a
// non-negative count.
func (t Tally) Validate() error {
	seen := make(map[party.Category]bool, len(t))
	for _, count := range t {
		if !count.Category.Valid() {
			return core.NewUnknownCategoryError(string(count.Category))
		}
		if seen[count.Category] {
			return fmt.Errorf("%w: %s", core.ErrDuplicateCategory, count.Category)
		}
		if count.Votes < 0 {
			return core.NewNegativeVotesError(string(count.Category), count.Votes)
		}
		seen[count.Category] = true
	}
	return nil
}

// clone returns a copy that does not share the backing array
func (t Tally) clone() Tally {
	return append(Tally(nil), t...)
}
