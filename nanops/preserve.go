// SPDX-License-Identifier: MIT
// Package: nanops
//
// Purpose:
//   - Post-process raw (Float64) reduction output so its element type follows
//     the input: inexact inputs keep their DType, everything else becomes
//     ndarray.DefaultFloat.
//   - Unwrap single-element 0-d outputs into bare scalars.
//
// Notes:
//   - The inexact check is a single capability lookup (DType.Info().SupportsNaN)
//     on the original input, never on a flattened intermediate.

package nanops

import "github.com/katalvlaran/nanstat/ndarray"

// outputDType returns the element type a reduction over in must produce.
func outputDType(in ndarray.DType) ndarray.DType {
	if in.Info().SupportsNaN {
		return in
	}
	return ndarray.DefaultFloat
}

// preserve casts raw to the output type for in and wraps it in a Result.
func preserve(raw *ndarray.Array, in ndarray.DType) (Result, error) {
	dt := outputDType(in)
	y := raw
	if raw.DType() != dt {
		var err error
		if y, err = raw.AsType(dt); err != nil {
			return Result{}, err
		}
	}
	return newResult(y), nil
}

// preserveScalar applies the same policy to a plain scalar value.
func preserveScalar(v float64, in ndarray.DType) Result {
	dt := outputDType(in)
	return Result{dtype: dt, scalar: dt.Cast(v)}
}
