package app

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"runoff/domain/core"
	"runoff/domain/district"
	"runoff/domain/party"
	"runoff/domain/transfer"
	"runoff/internal"
	"runoff/internal/errors"
	"runoff/internal/sampling"
	"runoff/ports"
)

// PoolTransfer is the simulated split of one vote pool
type PoolTransfer struct {
	Source party.Category
	Votes  int
	Flows  district.Tally // destination -> transferred votes, in working order
	// Dropped is set when the pool had votes but no eligible destination
	Dropped bool
}

// TransferModel applies one realization of the national transfer
// propensities to districts. The realization is drawn once, at
// construction; every later call only samples multinomial splits, so a
// model is safe for concurrent use.
type TransferModel struct {
	scenarioID      core.ScenarioID
	hyperparameters transfer.Matrix
	parameters      transfer.Matrix
	options         ModelOptions
	seed            uint64
	rngPort         ports.RNGPort
	logger          *internal.Logger
}

// NewTransferModel realizes a scenario from the hyperparameters: either the
// hyperparameters themselves (FixedParameters) or one truncated-normal draw.
func NewTransferModel(ctx context.Context, hyperparameters transfer.Matrix, rngPort ports.RNGPort, opts ModelOptions) (*TransferModel, error) {
	if rngPort == nil {
		return nil, errors.InvalidInput("transfer model requires an rng port")
	}
	if err := hyperparameters.Validate(); err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}
	if math.IsNaN(opts.Variance) || opts.Variance < 0 {
		return nil, errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("%w: %g", core.ErrInvalidVariance, opts.Variance))
	}
	if opts.MaxConcurrency < 1 {
		opts.MaxConcurrency = 1
	}
	if opts.Logger == nil {
		opts.Logger = internal.DefaultLogger
	}

	seed := opts.Seed
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return nil, errors.Wrap(err, "failed to seed transfer model")
		}
	}
	scenarioID := opts.ScenarioID
	if scenarioID == "" {
		scenarioID = core.NewScenarioID()
	}

	m := &TransferModel{
		scenarioID:      scenarioID,
		hyperparameters: hyperparameters.Clone(),
		options:         opts,
		seed:            seed,
		rngPort:         rngPort,
		logger:          opts.Logger.WithComponent("TransferModel"),
	}

	if opts.FixedParameters {
		m.parameters = hyperparameters.Clone()
	} else {
		rng, err := rngPort.SeededStream(ctx, "parameters:"+scenarioID.String(), seed)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open parameter stream")
		}
		m.parameters, err = transfer.SampleFromHyperparameters(hyperparameters, opts.Variance, rng)
		if err != nil {
			return nil, errors.Wrap(errors.WithCode(codeFor(err), err), "failed to sample parameters")
		}
	}

	m.logger.Info("scenario %s realized (fixed=%t, variance=%.3f, mean drift=%.4f)",
		scenarioID, opts.FixedParameters, opts.Variance, m.MeanDrift())
	return m, nil
}

// NewTransferModelFromSource loads the hyperparameters from src and realizes
// a scenario from them.
func NewTransferModelFromSource(ctx context.Context, src ports.HyperparameterSource, rngPort ports.RNGPort, opts ModelOptions) (*TransferModel, error) {
	if src == nil {
		return nil, errors.InvalidInput("transfer model requires a hyperparameter source")
	}
	hyperparameters, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load hyperparameters")
	}
	return NewTransferModel(ctx, hyperparameters, rngPort, opts)
}

// codeFor classifies a domain error: bad or unknown input versus a failed draw
func codeFor(err error) string {
	if core.IsInputError(err) || core.IsLookupError(err) {
		return errors.CodeInvalidInput
	}
	return errors.CodeSimulationError
}

// ScenarioID identifies the realization held by the model
func (m *TransferModel) ScenarioID() core.ScenarioID { return m.scenarioID }

// Parameters returns a copy of the realized propensities
func (m *TransferModel) Parameters() transfer.Matrix { return m.parameters.Clone() }

// MeanDrift is the mean absolute difference between the realized
// propensities and the hyperparameters over off-diagonal entries.
func (m *TransferModel) MeanDrift() float64 {
	var deltas stats.Float64Data
	for src, row := range m.hyperparameters {
		for dst := range row {
			if src == dst {
				continue
			}
			deltas = append(deltas, math.Abs(m.parameters.Propensity(src, dst)-m.hyperparameters.Propensity(src, dst)))
		}
	}
	mean, err := stats.Mean(deltas)
	if err != nil {
		return 0
	}
	return mean
}

// SimulateTransfers splits every vote pool of the district (eliminated
// parties, then abstention) across second-round categories.
func (m *TransferModel) SimulateTransfers(ctx context.Context, result district.Result) ([]PoolTransfer, error) {
	if err := result.Validate(); err != nil {
		return nil, errors.WithCode(codeFor(err), err)
	}
	normalized, err := m.parameters.Normalize(result)
	if err != nil {
		return nil, errors.WithCode(codeFor(err), err)
	}
	rng, err := m.rngPort.Stream(ctx, m.scenarioID, result.District.ID, m.seed)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open stream for %s", result.District.ID)
	}

	order := result.WorkingOrder()
	pools := result.AvailablePools()
	transfers := make([]PoolTransfer, 0, len(pools))
	for _, pool := range pools {
		row := normalized.Row(pool.Category, order)
		pt := PoolTransfer{Source: pool.Category, Votes: pool.Votes, Flows: make(district.Tally, len(order))}
		for j, dst := range order {
			pt.Flows[j].Category = dst
		}

		if floats.Sum(row) == 0 {
			// No eligible destination: the pool's votes are not redistributed.
			if pool.Votes > 0 {
				pt.Dropped = true
				m.logger.Warn("district %s: %d votes of %s have no eligible destination and are dropped",
					result.District.ID, pool.Votes, pool.Category)
			}
			transfers = append(transfers, pt)
			continue
		}

		counts, err := sampling.Multinomial(pool.Votes, row, rng)
		if err != nil {
			return nil, errors.Wrap(errors.WithCode(errors.CodeSimulationError, err),
				fmt.Sprintf("failed to split %s pool in %s", pool.Category, result.District.ID))
		}
		for j, n := range counts {
			pt.Flows[j].Votes = n
		}
		transfers = append(transfers, pt)
	}
	return transfers, nil
}

// Predict adds the simulated transfers to the first-round counts of every
// second-round category. Categories absent from the competing tally start
// from zero.
func (m *TransferModel) Predict(ctx context.Context, result district.Result) (district.Prediction, error) {
	transfers, err := m.SimulateTransfers(ctx, result)
	if err != nil {
		return district.Prediction{}, err
	}

	received := make(map[party.Category]int)
	for _, pt := range transfers {
		for _, flow := range pt.Flows {
			received[flow.Category] += flow.Votes
		}
	}

	categories := party.SecondRoundCategories()
	results := make(district.Tally, len(categories))
	for i, c := range categories {
		results[i] = district.Count{Category: c, Votes: result.Competing.Votes(c) + received[c]}
	}

	m.logger.Debug("district %s predicted under scenario %s", result.District.ID, m.scenarioID)
	return district.Prediction{District: result.District, Results: results}, nil
}

// PredictAll predicts every district independently. Predictions keep the
// order of results; the first failure cancels the remaining districts.
func (m *TransferModel) PredictAll(ctx context.Context, results []district.Result) ([]district.Prediction, error) {
	predictions := make([]district.Prediction, len(results))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.options.MaxConcurrency)
	for i := range results {
		idx := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := m.Predict(ctx, results[idx])
			if err != nil {
				return err
			}
			predictions[idx] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch prediction failed")
	}
	return predictions, nil
}
