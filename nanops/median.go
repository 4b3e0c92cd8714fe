// SPDX-License-Identifier: MIT

package nanops

import (
	"math"
	"slices"

	"github.com/katalvlaran/nanstat/ndarray"
)

const (
	opNanMedian = "NanMedian"
	opMedian    = "Median"
)

// NanMedian computes the median of the non-NaN values of every lane along the
// selected axis. Default axis: 0 (use WithWholeArray for a flattened median).
//
// Behavior highlights:
//   - A 0-d input short-circuits to its own value; no axis is validated.
//   - Lanes are visited explicitly (ndarray.MapLanes) and each lane is copied
//     before filtering and sorting.
//   - A lane with no non-NaN value yields NaN.
//   - Element type follows the original, un-flattened input.
//
// Errors: ErrNilArray, ErrInvalidAxis (*AxisError).
// Complexity: O(n log L) for lane length L.
func NanMedian(x *ndarray.Array, opts ...Option) (Result, error) {
	if x == nil {
		return Result{}, nanopsErrorf(opNanMedian, ErrNilArray)
	}
	if x.NDim() == 0 {
		v, _ := x.Item()
		return preserveScalar(v, x.DType()), nil
	}
	o := gatherOptions(ndarray.AxisOf(0), opts)

	src, k, err := reductionInput(x, o.axis)
	if err != nil {
		return Result{}, nanopsErrorf(opNanMedian, err)
	}
	raw, err := src.MapLanes(k, nanMedianLane)
	if err != nil {
		return Result{}, nanopsErrorf(opNanMedian, err)
	}

	res, err := preserve(raw, x.DType())
	if err != nil {
		return Result{}, nanopsErrorf(opNanMedian, err)
	}
	return res, nil
}

// Median computes the ordinary median along the selected axis; any NaN in a
// lane makes that lane's median NaN. Default axis: whole array.
func Median(x *ndarray.Array, opts ...Option) (Result, error) {
	if x == nil {
		return Result{}, nanopsErrorf(opMedian, ErrNilArray)
	}
	o := gatherOptions(ndarray.WholeArray, opts)

	src, k, err := reductionInput(x, o.axis)
	if err != nil {
		return Result{}, nanopsErrorf(opMedian, err)
	}
	raw, err := src.MapLanes(k, medianLane)
	if err != nil {
		return Result{}, nanopsErrorf(opMedian, err)
	}

	res, err := preserve(raw, x.DType())
	if err != nil {
		return Result{}, nanopsErrorf(opMedian, err)
	}
	return res, nil
}

// nanMedianLane drops NaN in place, sorts what remains and takes the median.
func nanMedianLane(lane []float64) float64 {
	kept := lane[:0]
	for _, v := range lane {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	slices.Sort(kept)
	return medianSorted(kept)
}

// medianLane is the NaN-propagating median of one lane.
func medianLane(lane []float64) float64 {
	if len(lane) == 0 {
		return math.NaN()
	}
	for _, v := range lane {
		if math.IsNaN(v) {
			return math.NaN()
		}
	}
	slices.Sort(lane)
	return medianSorted(lane)
}

// medianSorted returns the middle element (odd length) or the mean of the two
// middle elements (even length) of a non-empty sorted slice.
func medianSorted(s []float64) float64 {
	h := len(s) / 2
	if len(s)%2 == 1 {
		return s[h]
	}
	return (s[h-1] + s[h]) / 2
}
