// SPDX-License-Identifier: MIT

package nanops

import "github.com/katalvlaran/nanstat/ndarray"

const opNanMean = "NanMean"

// NanMean computes the arithmetic mean along the selected axis, ignoring NaN.
// Default axis: whole array.
//
// Per lane of length N with c NaN entries:
//
//	validFraction = 1 - c/N
//	mean          = mean(zeroFilled) / validFraction
//
// which equals sum(non-NaN)/count(non-NaN). An all-NaN (or empty) lane divides
// 0 by 0 and yields NaN.
//
// Errors: ErrNilArray, ErrInvalidAxis (*AxisError).
// Complexity: O(n) time, O(n) scratch.
func NanMean(x *ndarray.Array, opts ...Option) (Result, error) {
	if x == nil {
		return Result{}, nanopsErrorf(opNanMean, ErrNilArray)
	}
	o := gatherOptions(ndarray.WholeArray, opts)

	// Stage 1 (Validate): resolve the axis before any copy is made.
	src, k, err := reductionInput(x, o.axis)
	if err != nil {
		return Result{}, nanopsErrorf(opNanMean, err)
	}

	// Stage 2 (Mask): count NaNs per lane and derive the valid fraction.
	mask := src.IsNaN()
	nanCount, err := mask.SumAxis(k)
	if err != nil {
		return Result{}, nanopsErrorf(opNanMean, err)
	}
	n := float64(src.Dim(k))
	validFraction := nanCount.Map(func(c float64) float64 { return 1.0 - c/n })

	// Stage 3 (Execute): zero-fill, ordinary mean, rescale.
	zeroFilled, err := src.FillWhere(mask, 0)
	if err != nil {
		return Result{}, nanopsErrorf(opNanMean, err)
	}
	mean, err := zeroFilled.MeanAxis(k)
	if err != nil {
		return Result{}, nanopsErrorf(opNanMean, err)
	}
	raw, err := mean.Zip(validFraction, func(m, f float64) float64 { return m / f })
	if err != nil {
		return Result{}, nanopsErrorf(opNanMean, err)
	}

	res, err := preserve(raw, x.DType())
	if err != nil {
		return Result{}, nanopsErrorf(opNanMean, err)
	}
	return res, nil
}
