// Package transfer models party-to-party vote transfer propensities and their
// adaptation to the parties present in a given district.
package transfer

import (
	"fmt"
	"math"

	"runoff/domain/core"
	"runoff/domain/district"
	"runoff/domain/party"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix maps a source category to the propensity of its votes to flow to
// each target category. Raw rows need not sum to 1. Self-transfer is always
// read as 0 whatever is stored.
type Matrix map[party.Category]map[party.Category]float64

// Propensity returns the weight of src -> dst; a missing entry reads as 0
func (m Matrix) Propensity(src, dst party.Category) float64 {
	if src == dst {
		return 0
	}
	return m[src][dst]
}

// Row returns the propensities of src in the given order
func (m Matrix) Row(src party.Category, order []party.Category) []float64 {
	row := make([]float64, len(order))
	for j, dst := range order {
		row[j] = m.Propensity(src, dst)
	}
	return row
}

// Validate checks that every key is a known category and every weight lies in [0,1]
func (m Matrix) Validate() error {
	for src, row := range m {
		if !src.Valid() {
			return core.NewUnknownCategoryError(string(src))
		}
		for dst, w := range row {
			if !dst.Valid() {
				return core.NewUnknownCategoryError(string(dst))
			}
			if math.IsNaN(w) || w < 0 || w > 1 {
				return core.NewPropensityError(string(src), string(dst), w)
			}
		}
	}
	return nil
}

// Clone returns a deep copy
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for src, row := range m {
		out[src] = make(map[party.Category]float64, len(row))
		for dst, w := range row {
			out[src][dst] = w
		}
	}
	return out
}

// ToDense materializes the matrix in the given order, or in
// party.DefaultOrder when order is empty. Cell (i,j) is the weight
// order[i] -> order[j]; the diagonal is zero.
func (m Matrix) ToDense(order []party.Category) (*mat.Dense, error) {
	if len(order) == 0 {
		order = party.DefaultOrder()
	}
	for _, c := range order {
		if !c.Valid() {
			return nil, core.NewUnknownCategoryError(string(c))
		}
	}

	n := len(order)
	data := make([]float64, 0, n*n)
	for _, src := range order {
		if _, ok := m[src]; !ok {
			return nil, fmt.Errorf("%w: no propensity row for %s", core.ErrUnknownCategory, src)
		}
		data = append(data, m.Row(src, order)...)
	}
	return mat.NewDense(n, n, data), nil
}

// FromDense wraps a dense matrix back into a Matrix keyed by order, or by
// party.DefaultOrder when order is empty.
func FromDense(dense mat.Matrix, order []party.Category) (Matrix, error) {
	if len(order) == 0 {
		order = party.DefaultOrder()
	}
	r, c := dense.Dims()
	if r != len(order) || c != len(order) {
		return nil, fmt.Errorf("%w: %dx%d for %d categories", core.ErrDimensionMismatch, r, c, len(order))
	}

	m := make(Matrix, len(order))
	for i, src := range order {
		m[src] = make(map[party.Category]float64, len(order))
		for j, dst := range order {
			m[src][dst] = dense.At(i, j)
		}
	}
	return m, nil
}

// Normalize adapts the matrix to one district. The result is keyed by the
// district's working order and holds, for every vote pool, the probability
// of each of its votes reaching a second-round category:
//
//   - a category with competing votes is never a source, while abstention
//     always is, so abstainers are redistributed like any other pool;
//   - a destination must hold competing votes or be the abstention pool;
//   - each surviving row is scaled to sum to 1.
//
// A pool row with no eligible destination is left all zero. Its votes are
// not redistributed anywhere; callers must treat them as lost.
func (m Matrix) Normalize(result district.Result) (Matrix, error) {
	order := result.WorkingOrder()
	dense, err := m.ToDense(order)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", result.District.ID, err)
	}

	isSource := make([]bool, len(order))
	isDestination := make([]bool, len(order))
	for i, c := range order {
		competing := result.Competing.Votes(c) > 0
		isSource[i] = c.IsAbstention() || !competing
		isDestination[i] = c.IsAbstention() || competing
	}

	dense.Apply(func(i, j int, v float64) float64 {
		if !isSource[i] || !isDestination[j] {
			return 0
		}
		return v
	}, dense)

	for i := range order {
		row := dense.RawRowView(i)
		sum := floats.Sum(row)
		if sum == 0 {
			continue
		}
		floats.Scale(1/sum, row)
	}

	return FromDense(dense, order)
}
