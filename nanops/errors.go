// SPDX-License-Identifier: MIT
// Package nanops: sentinel error set.
// Both contract violations (bad axis, bad ddof) are reported eagerly, before
// any intermediate buffer is allocated. Callers match with errors.Is; the
// offending axis is available through errors.As(*AxisError).

package nanops

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAxis indicates an axis outside [-ndim, ndim).
	ErrInvalidAxis = errors.New("nanops: axis out of bounds")

	// ErrInvalidDDoF indicates a ddof other than 0 or 1.
	ErrInvalidDDoF = errors.New("nanops: NaNs require ddof 0 or 1")

	// ErrNilArray indicates a nil input array.
	ErrNilArray = errors.New("nanops: nil array")

	// ErrUnknownOp indicates an unrecognized reduction name.
	ErrUnknownOp = errors.New("nanops: unknown reduction")
)

// AxisError reports the original (unnormalized) axis that failed resolution.
type AxisError struct {
	Axis int
	NDim int
}

// Error implements error.
func (e *AxisError) Error() string {
	return fmt.Sprintf("nanops: axis(=%d) out of bounds for array of dimension %d", e.Axis, e.NDim)
}

// Unwrap makes errors.Is(err, ErrInvalidAxis) hold.
func (e *AxisError) Unwrap() error { return ErrInvalidAxis }

// nanopsErrorf wraps an underlying error with the reduction name.
func nanopsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
