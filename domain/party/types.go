package party

import (
	"runoff/domain/core"
)

// Category is one node of the transfer graph: a political family or the
// abstention pool.
type Category string

const (
	NFP Category = "NFP+"
	LR  Category = "LR+"
	RN  Category = "RN+"
	ENS Category = "ENS+"
	DIV Category = "DIV"

	// Abstention is a transfer source and destination but never wins a seat.
	Abstention Category = "ABS"
)

// parties lists the political families in declaration order. Predictions and
// seat tallies iterate in this order.
var parties = []Category{NFP, LR, RN, ENS, DIV}

// defaultOrder is the canonical row/column order of a dense transfer matrix
var defaultOrder = []Category{DIV, ENS, LR, NFP, RN, Abstention}

// Parties returns the political families in declaration order
func Parties() []Category {
	return append([]Category(nil), parties...)
}

// SecondRoundCategories returns the parties followed by the abstention pool
func SecondRoundCategories() []Category {
	return append(Parties(), Abstention)
}

// DefaultOrder returns the canonical order used when no order is supplied
func DefaultOrder() []Category {
	return append([]Category(nil), defaultOrder...)
}

// IsParty reports whether c is a contestable political family
func (c Category) IsParty() bool {
	for _, p := range parties {
		if c == p {
			return true
		}
	}
	return false
}

// IsAbstention reports whether c is the abstention sentinel
func (c Category) IsAbstention() bool {
	return c == Abstention
}

// Valid reports whether c belongs to the closed category set
func (c Category) Valid() bool {
	return c.IsParty() || c.IsAbstention()
}

func (c Category) String() string { return string(c) }

// Parse converts a raw label into a Category
func Parse(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", core.NewUnknownCategoryError(s)
	}
	return c, nil
}
