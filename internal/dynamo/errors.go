package dynamo

import "errors"

// Domain errors for solver and analysis operations.
var (
	// ErrUnsupportedSolver indicates an unknown stepper selector.
	ErrUnsupportedSolver = errors.New("dynamo: unsupported solver")

	// ErrInvalidDirection indicates an unrecognized section crossing filter.
	ErrInvalidDirection = errors.New("dynamo: invalid crossing direction")

	// ErrInsufficientData indicates too few points for an estimator.
	ErrInsufficientData = errors.New("dynamo: insufficient data")

	// ErrInvalidRange indicates a degenerate numeric range or count.
	ErrInvalidRange = errors.New("dynamo: invalid range")

	// ErrInvalidState indicates a state vector with NaN or Inf entries.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)
