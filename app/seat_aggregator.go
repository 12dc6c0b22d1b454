package app

import (
	"runoff/domain/district"
	"runoff/domain/party"
)

// AggregateSeats sums the one-hot seat vector of every prediction into a
// national tally covering all five parties.
func AggregateSeats(predictions []district.Prediction) district.SeatTally {
	total := make(district.SeatTally, len(party.Parties()))
	for _, c := range party.Parties() {
		total[c] = 0
	}
	for _, p := range predictions {
		total.Add(p.Seats())
	}
	return total
}
