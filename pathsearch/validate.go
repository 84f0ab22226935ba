package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/breachpath/grid"
)

// validateInputs checks the arguments of Solve before any allocation.
// Deterministic and side-effect free; returns only package or grid sentinels.
//
// Complexity: O(T).
func validateInputs(m *grid.Matrix, targets []grid.TargetSequence, bufferSize int, opts Options) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(targets) == 0 {
		return ErrNoTargets
	}
	if bufferSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBufferSize, bufferSize)
	}
	for i, t := range targets {
		// Only the zero value can be empty; constructors reject it earlier.
		if t.Len() == 0 {
			return fmt.Errorf("target %d: %w", i, grid.ErrEmptySequence)
		}
	}

	return validateOptions(opts)
}

// validateOptions checks Options consistency.
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit %v", ErrInvalidOptions, opts.TimeLimit)
	}

	return nil
}
