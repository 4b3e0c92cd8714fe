// SPDX-License-Identifier: MIT

package nanops

import "github.com/katalvlaran/nanstat/ndarray"

// ResolveAxis normalizes axis against an array of dimensionality ndim.
//   - WholeArray: returns whole=true; the caller flattens and reduces axis 0.
//   - Negative axes count from the end (axis + ndim).
//   - Anything outside [0, ndim) after normalization is an *AxisError
//     carrying the original value.
//
// Complexity: O(1).
func ResolveAxis(axis ndarray.Axis, ndim int) (k int, whole bool, err error) {
	if axis.IsWhole() {
		return 0, true, nil
	}
	k = axis.Index()
	if k < 0 {
		k += ndim
	}
	if k < 0 || k >= ndim {
		return 0, false, &AxisError{Axis: axis.Index(), NDim: ndim}
	}
	return k, false, nil
}

// reductionInput returns the array a lane-based reduction runs over and the
// concrete axis. WholeArray flattens first, so no bounds check applies.
func reductionInput(x *ndarray.Array, axis ndarray.Axis) (*ndarray.Array, int, error) {
	k, whole, err := ResolveAxis(axis, x.NDim())
	if err != nil {
		return nil, 0, err
	}
	if whole {
		return x.Ravel(), 0, nil
	}
	return x, k, nil
}

// passThroughAxis validates axis with ResolveAxis and returns the normalized
// selection for the ndarray primitives.
func passThroughAxis(x *ndarray.Array, axis ndarray.Axis) (ndarray.Axis, error) {
	k, whole, err := ResolveAxis(axis, x.NDim())
	if err != nil {
		return ndarray.Axis{}, err
	}
	if whole {
		return ndarray.WholeArray, nil
	}
	return ndarray.AxisOf(k), nil
}
