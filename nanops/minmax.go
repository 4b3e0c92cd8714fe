// SPDX-License-Identifier: MIT

package nanops

import "github.com/katalvlaran/nanstat/ndarray"

const (
	opNanMin    = "NanMin"
	opNanMax    = "NanMax"
	opNanArgMin = "NanArgMin"
	opNanArgMax = "NanArgMax"
)

// NanMin returns the NaN-ignoring minimum; see ndarray.Array.NanMin.
// The result keeps the input element type. Default axis: whole array.
func NanMin(x *ndarray.Array, opts ...Option) (Result, error) {
	return passThrough(opNanMin, x, opts, (*ndarray.Array).NanMin)
}

// NanMax returns the NaN-ignoring maximum; see ndarray.Array.NanMax.
func NanMax(x *ndarray.Array, opts ...Option) (Result, error) {
	return passThrough(opNanMax, x, opts, (*ndarray.Array).NanMax)
}

// NanArgMin returns Int64 positions of the NaN-ignoring minimum. Whole-array
// reductions return a flat index.
func NanArgMin(x *ndarray.Array, opts ...Option) (Result, error) {
	return passThrough(opNanArgMin, x, opts, (*ndarray.Array).NanArgMin)
}

// NanArgMax returns Int64 positions of the NaN-ignoring maximum.
func NanArgMax(x *ndarray.Array, opts ...Option) (Result, error) {
	return passThrough(opNanArgMax, x, opts, (*ndarray.Array).NanArgMax)
}

func passThrough(op string, x *ndarray.Array, opts []Option,
	fn func(*ndarray.Array, ndarray.Axis) (*ndarray.Array, error),
) (Result, error) {
	if x == nil {
		return Result{}, nanopsErrorf(op, ErrNilArray)
	}
	o := gatherOptions(ndarray.WholeArray, opts)
	axis, err := passThroughAxis(x, o.axis)
	if err != nil {
		return Result{}, nanopsErrorf(op, err)
	}
	y, err := fn(x, axis)
	if err != nil {
		return Result{}, nanopsErrorf(op, err)
	}
	return newResult(y), nil
}
