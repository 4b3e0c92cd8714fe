// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - NaN-aware extrema: NanMin/NanMax skip NaN and return NaN only for
//     all-NaN lanes; NanArgMin/NanArgMax return Int64 positions and fail on
//     all-NaN lanes.
//
// Policy:
//   - Min/Max keep the receiver's DType; ArgMin/ArgMax return Int64.
//   - WholeArray reduces the flattened array; ArgMin/ArgMax then return a
//     flat (row-major) index.
//   - A zero-length lane fails with ErrEmptyReduction whenever at least one
//     lane exists.
//   - Ties resolve to the first occurrence.

package ndarray

import (
	"fmt"
	"math"
)

const (
	opNanMin    = "NanMin"
	opNanMax    = "NanMax"
	opNanArgMin = "NanArgMin"
	opNanArgMax = "NanArgMax"
)

// NanMin returns the minimum along axis, ignoring NaN.
func (a *Array) NanMin(axis Axis) (*Array, error) {
	return a.extremum(opNanMin, axis, func(x, y float64) bool { return x < y })
}

// NanMax returns the maximum along axis, ignoring NaN.
func (a *Array) NanMax(axis Axis) (*Array, error) {
	return a.extremum(opNanMax, axis, func(x, y float64) bool { return x > y })
}

// NanArgMin returns the index of the minimum along axis, ignoring NaN.
func (a *Array) NanArgMin(axis Axis) (*Array, error) {
	return a.argExtremum(opNanArgMin, axis, func(x, y float64) bool { return x < y })
}

// NanArgMax returns the index of the maximum along axis, ignoring NaN.
func (a *Array) NanArgMax(axis Axis) (*Array, error) {
	return a.argExtremum(opNanArgMax, axis, func(x, y float64) bool { return x > y })
}

// normalizeAxis resolves a (possibly negative) concrete axis against ndim.
func normalizeAxis(axis, ndim int) (int, error) {
	k := axis
	if k < 0 {
		k += ndim
	}
	if k < 0 || k >= ndim {
		return 0, fmt.Errorf("axis %d for ndim %d: %w", axis, ndim, ErrAxisOutOfRange)
	}
	return k, nil
}

// reductionSource flattens for WholeArray and normalizes concrete axes.
func (a *Array) reductionSource(axis Axis) (*Array, int, error) {
	if axis.IsWhole() {
		return a.Ravel(), 0, nil
	}
	k, err := normalizeAxis(axis.Index(), len(a.shape))
	if err != nil {
		return nil, 0, err
	}
	return a, k, nil
}

// extremum implements NanMin/NanMax.
// Stage 1: resolve source and axis; reject zero-length lanes.
// Stage 2: per lane, keep the best non-NaN value (NaN when none).
// Stage 3: restore the receiver's DType.
func (a *Array) extremum(op string, axis Axis, better func(x, y float64) bool) (*Array, error) {
	src, k, err := a.reductionSource(axis)
	if err != nil {
		return nil, arrayErrorf(op, err)
	}
	l, err := src.Lanes(k)
	if err != nil {
		return nil, arrayErrorf(op, err)
	}
	if l.Len() == 0 && l.Count() > 0 {
		return nil, arrayErrorf(op, ErrEmptyReduction)
	}

	out, err := src.MapLanes(k, func(lane []float64) float64 {
		best := math.NaN()
		for _, v := range lane {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(best) || better(v, best) {
				best = v
			}
		}
		return best
	})
	if err != nil {
		return nil, arrayErrorf(op, err)
	}
	out.dtype = a.dtype

	return out, nil
}

// argExtremum implements NanArgMin/NanArgMax.
func (a *Array) argExtremum(op string, axis Axis, better func(x, y float64) bool) (*Array, error) {
	src, k, err := a.reductionSource(axis)
	if err != nil {
		return nil, arrayErrorf(op, err)
	}
	l, err := src.Lanes(k)
	if err != nil {
		return nil, arrayErrorf(op, err)
	}
	if l.Len() == 0 && l.Count() > 0 {
		return nil, arrayErrorf(op, ErrEmptyReduction)
	}

	allNaN := false
	out, err := src.MapLanes(k, func(lane []float64) float64 {
		pos := -1
		for j, v := range lane {
			if math.IsNaN(v) {
				continue
			}
			if pos < 0 || better(v, lane[pos]) {
				pos = j
			}
		}
		if pos < 0 {
			allNaN = true
		}
		return float64(pos)
	})
	if err != nil {
		return nil, arrayErrorf(op, err)
	}
	if allNaN {
		return nil, arrayErrorf(op, ErrAllNaN)
	}
	out.dtype = Int64

	return out, nil
}
