package app

import (
	"context"
	"testing"

	"runoff/adapters/rng"
	"runoff/domain/district"
	"runoff/domain/party"
	"runoff/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSeats(t *testing.T) {
	predictions := []district.Prediction{
		{Results: district.Tally{{Category: party.NFP, Votes: 10}, {Category: party.RN, Votes: 5}, {Category: party.Abstention, Votes: 100}}},
		{Results: district.Tally{{Category: party.NFP, Votes: 1}, {Category: party.RN, Votes: 5}, {Category: party.Abstention, Votes: 0}}},
		{Results: district.Tally{{Category: party.ENS, Votes: 7}, {Category: party.LR, Votes: 7}, {Category: party.Abstention, Votes: 0}}},
		{Results: district.Tally{{Category: party.NFP, Votes: 3}, {Category: party.DIV, Votes: 2}}},
	}

	seats := AggregateSeats(predictions)
	assert.Equal(t, district.SeatTally{
		party.NFP: 2,
		party.LR:  0,
		party.RN:  1,
		party.ENS: 1,
		party.DIV: 0,
	}, seats)
}

func TestAggregateSeats_Empty(t *testing.T) {
	seats := AggregateSeats(nil)
	assert.Len(t, seats, 5)
	assert.Zero(t, seats.Total())
}

func TestAggregateSeats_OneSeatPerDistrict(t *testing.T) {
	ctx := context.Background()
	cfg := testkit.DefaultElectionConfig()
	cfg.DistrictCount = 60
	results, err := testkit.NewElectionGenerator(cfg).GenerateResults()
	require.NoError(t, err)

	model, err := NewTransferModel(ctx, testkit.Hyperparameters(), rng.NewStreamAdapter(), quietOptions())
	require.NoError(t, err)
	predictions, err := model.PredictAll(ctx, results)
	require.NoError(t, err)

	seats := AggregateSeats(predictions)
	assert.Len(t, seats, 5)
	assert.Equal(t, len(results), seats.Total())
}
