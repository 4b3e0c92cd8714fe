// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All primitives return these sentinels (optionally wrapped with an operation
// tag via arrayErrorf); tests check them with errors.Is.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape contains a negative dimension.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrDataLength indicates that the flat data length does not match the
	// product of the shape.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrOutOfRange indicates that an index tuple is outside the array bounds
	// or has the wrong number of components.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrAxisOutOfRange indicates a concrete axis outside [0, ndim).
	ErrAxisOutOfRange = errors.New("ndarray: axis out of range")

	// ErrNilArray indicates that a nil *Array was used.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrUnknownDType is returned when a dtype name cannot be parsed.
	ErrUnknownDType = errors.New("ndarray: unknown dtype")

	// ErrNotScalar is returned by Item when the array holds more than one element.
	ErrNotScalar = errors.New("ndarray: array is not a single element")

	// ErrDimensionMismatch indicates incompatible operand shapes for a
	// broadcast operation.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrEmptyReduction is returned by Min/Max/ArgMin/ArgMax over a zero-size lane.
	ErrEmptyReduction = errors.New("ndarray: zero-size array to reduction operation")

	// ErrNaNInf indicates a NaN or ±Inf element for a dtype that cannot hold it.
	ErrNaNInf = errors.New("ndarray: NaN or Inf for a non-float dtype")

	// ErrAllNaN is returned by NanArgMin/NanArgMax when a lane holds only NaN.
	ErrAllNaN = errors.New("ndarray: all-NaN slice encountered")
)

// arrayErrorf wraps an underlying error with the given operation tag.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
