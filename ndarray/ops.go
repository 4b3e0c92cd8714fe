// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Provide the element-wise, axis and broadcast primitives the reduction
//     engine composes: NaN masks, replace-where-mask, axis sums and means,
//     expand-dims and broadcast subtraction.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 traversal for element-wise work; lane order for axis work.
//   - Every primitive allocates its output; receivers are never written.
//   - Arithmetic primitives compute and return Float64 arrays regardless of the
//     operand element type; FillWhere and ExpandDims keep the receiver's DType.

package ndarray

import (
	"fmt"
	"math"
)

// IsNaN returns a Bool array of the same shape marking NaN elements.
// Non-inexact arrays produce an all-false mask.
// Complexity: O(n).
func (a *Array) IsNaN() *Array {
	out := newArray(Bool, a.shape)
	if !a.dtype.Inexact() {
		return out
	}
	for i, v := range a.data {
		if math.IsNaN(v) {
			out.data[i] = 1
		}
	}
	return out
}

// FillWhere returns a copy of a with v (cast to a's DType) written wherever
// mask is non-zero. mask must have the same shape as a.
// Complexity: O(n).
func (a *Array) FillWhere(mask *Array, v float64) (*Array, error) {
	if mask == nil {
		return nil, arrayErrorf("FillWhere", ErrNilArray)
	}
	if !sameShape(a.shape, mask.shape) {
		return nil, arrayErrorf(fmt.Sprintf("FillWhere: %v vs mask %v", a.shape, mask.shape), ErrDimensionMismatch)
	}
	fill := a.dtype.Cast(v)
	out := a.Clone()
	for i, m := range mask.data {
		if m != 0 {
			out.data[i] = fill
		}
	}
	return out, nil
}

// SumAxis sums along a concrete axis, returning Float64 with the axis removed.
// Summation is sequential in lane order.
// Complexity: O(n).
func (a *Array) SumAxis(axis int) (*Array, error) {
	out, err := a.MapLanes(axis, func(lane []float64) float64 {
		s := 0.0
		for _, v := range lane {
			s += v
		}
		return s
	})
	if err != nil {
		return nil, arrayErrorf("SumAxis", err)
	}
	return out, nil
}

// MeanAxis returns SumAxis(axis) divided by the axis length.
// A zero-length axis yields NaN (0/0), not an error.
// Complexity: O(n).
func (a *Array) MeanAxis(axis int) (*Array, error) {
	s, err := a.SumAxis(axis)
	if err != nil {
		return nil, arrayErrorf("MeanAxis", err)
	}
	n := float64(a.shape[axis])
	for i := range s.data {
		s.data[i] /= n
	}
	return s, nil
}

// ExpandDims returns a copy with a new size-1 dimension inserted at axis,
// 0 <= axis <= ndim.
func (a *Array) ExpandDims(axis int) (*Array, error) {
	if axis < 0 || axis > len(a.shape) {
		return nil, arrayErrorf("ExpandDims", ErrAxisOutOfRange)
	}
	shape := make([]int, 0, len(a.shape)+1)
	shape = append(shape, a.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, a.shape[axis:]...)
	out := newArray(a.dtype, shape)
	copy(out.data, a.data)
	return out, nil
}

// SubBroadcast returns a - b where b has the same rank as a and every
// dimension of b equals a's or is 1 (broadcast).
// Implementation:
//   - Stage 1: Validate rank and per-dimension compatibility.
//   - Stage 2: Walk a in row-major order carrying a multi-index, deriving the
//     b offset from b's strides with broadcast dimensions pinned to 0.
//
// Complexity: O(n·ndim) worst case, O(n) amortized.
func (a *Array) SubBroadcast(b *Array) (*Array, error) {
	if b == nil {
		return nil, arrayErrorf("SubBroadcast", ErrNilArray)
	}
	if len(b.shape) != len(a.shape) {
		return nil, arrayErrorf(fmt.Sprintf("SubBroadcast: %v - %v", a.shape, b.shape), ErrDimensionMismatch)
	}
	bStrides := make([]int, len(b.shape))
	for k := range a.shape {
		switch b.shape[k] {
		case a.shape[k]:
			bStrides[k] = b.strides[k]
		case 1:
			bStrides[k] = 0
		default:
			return nil, arrayErrorf(fmt.Sprintf("SubBroadcast: %v - %v", a.shape, b.shape), ErrDimensionMismatch)
		}
	}

	out := newArray(Float64, a.shape)
	if len(a.data) == 0 {
		return out, nil
	}
	idx := make([]int, len(a.shape))
	bOff := 0
	for i, v := range a.data {
		out.data[i] = v - b.data[bOff]
		// advance the multi-index (last axis fastest)
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			bOff += bStrides[k]
			if idx[k] < a.shape[k] {
				break
			}
			bOff -= bStrides[k] * idx[k]
			idx[k] = 0
		}
	}
	return out, nil
}

// Map returns a Float64 array with fn applied to every element.
func (a *Array) Map(fn func(v float64) float64) *Array {
	out := newArray(Float64, a.shape)
	for i, v := range a.data {
		out.data[i] = fn(v)
	}
	return out
}

// Zip returns a Float64 array with fn applied to matching elements of a and b,
// which must have the same shape.
func (a *Array) Zip(b *Array, fn func(x, y float64) float64) (*Array, error) {
	if b == nil {
		return nil, arrayErrorf("Zip", ErrNilArray)
	}
	if !sameShape(a.shape, b.shape) {
		return nil, arrayErrorf(fmt.Sprintf("Zip: %v vs %v", a.shape, b.shape), ErrDimensionMismatch)
	}
	out := newArray(Float64, a.shape)
	for i, v := range a.data {
		out.data[i] = fn(v, b.data[i])
	}
	return out, nil
}

func sameShape(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for k := range x {
		if x[k] != y[k] {
			return false
		}
	}
	return true
}
