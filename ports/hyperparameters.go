package ports

import (
	"context"

	"runoff/domain/transfer"
)

// HyperparameterSource supplies the analyst's mean transfer propensities
type HyperparameterSource interface {
	Load(ctx context.Context) (transfer.Matrix, error)
}
