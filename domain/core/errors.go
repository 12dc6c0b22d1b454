package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Lookup errors
	ErrUnknownCategory   = errors.New("unknown category")
	ErrDuplicateCategory = errors.New("duplicate category")

	// Input contract errors
	ErrNegativeVotes      = errors.New("negative vote count")
	ErrInvalidPropensity  = errors.New("propensity outside [0,1]")
	ErrInvalidVariance    = errors.New("invalid variance")
	ErrDimensionMismatch  = errors.New("matrix dimension does not match category order")
	ErrOverlappingResults = errors.New("category both competing and eliminated")

	// Outcome errors
	ErrNoWinner = errors.New("prediction has no party to elect")
)

// Error constructors with context
func NewUnknownCategoryError(category string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

func NewNegativeVotesError(category string, votes int) error {
	return fmt.Errorf("%w: %s has %d votes", ErrNegativeVotes, category, votes)
}

func NewPropensityError(source, target string, value float64) error {
	return fmt.Errorf("%w: %s -> %s = %g", ErrInvalidPropensity, source, target, value)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrNegativeVotes) ||
		errors.Is(err, ErrInvalidPropensity) ||
		errors.Is(err, ErrInvalidVariance) ||
		errors.Is(err, ErrDuplicateCategory) ||
		errors.Is(err, ErrOverlappingResults)
}

func IsLookupError(err error) bool {
	return errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrDimensionMismatch)
}
