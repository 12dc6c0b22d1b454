package district

import (
	"fmt"
	"strings"

	"runoff/domain/core"
	"runoff/domain/party"
)

// Prediction is the modelled second-round vote count of a district
type Prediction struct {
	District District
	Results  Tally
}

// SeatTally counts seats per party
type SeatTally map[party.Category]int

// Winner returns the party with the most votes. Abstention never wins; ties
// go to the party listed first in Results.
func (p Prediction) Winner() (party.Category, error) {
	var (
		winner party.Category
		best   int
		found  bool
	)
	for _, count := range p.Results {
		if !count.Category.IsParty() {
			continue
		}
		if !found || count.Votes > best {
			winner, best, found = count.Category, count.Votes, true
		}
	}
	if !found {
		return "", core.ErrNoWinner
	}
	return winner, nil
}

// Seats returns a one-hot tally over every party. It is all zeros when the
// prediction lists no party.
func (p Prediction) Seats() SeatTally {
	seats := make(SeatTally, len(party.Parties()))
	for _, c := range party.Parties() {
		seats[c] = 0
	}
	if winner, err := p.Winner(); err == nil {
		seats[winner] = 1
	}
	return seats
}

// Add accumulates other into s
func (s SeatTally) Add(other SeatTally) {
	for c, n := range other {
		s[c] += n
	}
}

// Total counts every seat in the tally
func (s SeatTally) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

func (p Prediction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Results for: %s\n", p.District.Name)
	if winner, err := p.Winner(); err == nil {
		fmt.Fprintf(&b, "Winner: %s\n", winner)
	}
	b.WriteString("=============\n")
	for _, count := range p.Results {
		fmt.Fprintf(&b, "%s: %d\n", count.Category, count.Votes)
	}
	return b.String()
}
