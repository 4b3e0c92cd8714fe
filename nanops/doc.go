// Package nanops computes NaN-aware statistical reductions over ndarray
// arrays: mean, variance, standard deviation and median, treating NaN as a
// missing value instead of propagating it, optionally along a single axis.
//
// 🚀 What is in here?
//
//	• NanMean          - sum of non-NaN values / count of non-NaN values
//	• NanVar / NanStd  - two-pass NaN-compensated variance, ddof 0 or 1
//	• NanMedian        - per-lane median of the non-NaN values
//	• Median           - ordinary median (NaN propagates)
//	• NanMin/NanMax/NanArgMin/NanArgMax - pass-through to ndarray
//	• Reduce           - name-based dispatch (Op) for CLI/HTTP surfaces
//
// ⚙️ Usage:
//
//	x, _ := ndarray.New(ndarray.Float64, []int{2, 3}, []float64{
//		0, 1, math.NaN(),
//		3, 4, 5,
//	})
//	m, err := nanops.NanMean(x, nanops.WithAxis(1)) // [0.5 4]
//	s, err := nanops.NanStd(x, nanops.WithDDoF(1))  // whole array, scalar
//
// Axis defaults:
//
//	Mean, Var, Std, Median, Min/Max and ArgMin/ArgMax reduce the whole
//	(flattened) array when no axis is given. NanMedian defaults to axis 0;
//	pass WithWholeArray() for a whole-array NaN median.
//
// Element types:
//
//	Results keep the input element type when it is inexact (Float32,
//	Float64); integer and bool inputs are promoted to ndarray.DefaultFloat.
//	Results whose reduced shape is 0-dimensional are returned as bare scalars
//	(Result.IsScalar).
//
// Numerical edge cases are values, not errors: an all-NaN lane yields NaN,
// and ddof=1 over a single valid element divides by zero (NaN).
package nanops
