// SPDX-License-Identifier: MIT
// Package: nanops
//
// Purpose:
//   - NanStd / NanVar: two-pass, NaN-compensated dispersion with biased
//     (ddof=0) or unbiased (ddof=1) correction.
//
// Algorithm (per lane of length N, c NaN entries, n = N - c valid entries):
//  1. z  = x with NaN replaced by 0
//  2. m1 = Σz / n
//  3. d  = (z - m1)²            (m1 broadcast back along the axis)
//  4. m2 = Σd - m1²·c           (each zero-filled slot contributed exactly m1²)
//  5. m2c = m2/n (ddof 0) or m2/(n-1) (ddof 1); std = sqrt(m2c)
//
// Variance is the element-type-preserved std squared in the output type, so
// std² == var holds bit-for-bit.
//
// Edge cases are not trapped: n == 0 yields NaN, and ddof=1 with n == 1
// divides 0 by 0 (NaN).

package nanops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nanstat/ndarray"
)

const (
	opNanStd = "NanStd"
	opNanVar = "NanVar"
)

// NanStd computes the standard deviation along the selected axis, ignoring NaN.
// Default axis: whole array (flattened before the axis is validated).
//
// Errors: ErrNilArray, ErrInvalidDDoF (checked first), ErrInvalidAxis.
// Complexity: O(n) time, O(n) scratch.
func NanStd(x *ndarray.Array, opts ...Option) (Result, error) {
	return nanStd(opNanStd, x, opts)
}

// NanVar computes the variance along the selected axis, ignoring NaN.
// It squares the NanStd result in the output element type.
func NanVar(x *ndarray.Array, opts ...Option) (Result, error) {
	std, err := nanStd(opNanVar, x, opts)
	if err != nil {
		return Result{}, err
	}
	return square(std)
}

func nanStd(op string, x *ndarray.Array, opts []Option) (Result, error) {
	if x == nil {
		return Result{}, nanopsErrorf(op, ErrNilArray)
	}
	o := gatherOptions(ndarray.WholeArray, opts)

	// Stage 1 (Validate): ddof first, then the axis; nothing is copied yet.
	if o.ddof != 0 && o.ddof != 1 {
		return Result{}, nanopsErrorf(fmt.Sprintf("%s(ddof=%d)", op, o.ddof), ErrInvalidDDoF)
	}
	src, k, err := reductionInput(x, o.axis)
	if err != nil {
		return Result{}, nanopsErrorf(op, err)
	}

	raw, err := nanStdRaw(src, k, o.ddof)
	if err != nil {
		return Result{}, nanopsErrorf(op, err)
	}
	res, err := preserve(raw, x.DType())
	if err != nil {
		return Result{}, nanopsErrorf(op, err)
	}
	return res, nil
}

// nanStdRaw runs the compensated two-pass algorithm along concrete axis k and
// returns Float64 standard deviations with the axis removed.
func nanStdRaw(src *ndarray.Array, k, ddof int) (*ndarray.Array, error) {
	// Stage 2 (Mask): NaN counts and valid counts per lane.
	mask := src.IsNaN()
	nanCount, err := mask.SumAxis(k)
	if err != nil {
		return nil, err
	}
	total := float64(src.Dim(k))
	n := nanCount.Map(func(c float64) float64 { return total - c })

	// Stage 3 (First pass): mean of the valid entries.
	zeroFilled, err := src.FillWhere(mask, 0)
	if err != nil {
		return nil, err
	}
	sum, err := zeroFilled.SumAxis(k)
	if err != nil {
		return nil, err
	}
	m1, err := sum.Zip(n, func(s, cnt float64) float64 { return s / cnt })
	if err != nil {
		return nil, err
	}

	// Stage 4 (Second pass): squared deviations, including zero-filled slots.
	m1Expanded, err := m1.ExpandDims(k)
	if err != nil {
		return nil, err
	}
	dev, err := zeroFilled.SubBroadcast(m1Expanded)
	if err != nil {
		return nil, err
	}
	ssd, err := dev.Map(func(v float64) float64 { return v * v }).SumAxis(k)
	if err != nil {
		return nil, err
	}

	// Stage 5 (Compensate): remove the m1² contributed by each NaN slot.
	spurious, err := m1.Zip(nanCount, func(m, c float64) float64 { return (m * m) * c })
	if err != nil {
		return nil, err
	}
	m2, err := ssd.Zip(spurious, func(s, sp float64) float64 { return s - sp })
	if err != nil {
		return nil, err
	}

	// Stage 6 (Correct): biased or unbiased divisor, then sqrt.
	divisor := n
	if ddof == 1 {
		divisor = n.Map(func(cnt float64) float64 { return cnt - 1.0 })
	}
	m2c, err := m2.Zip(divisor, func(v, d float64) float64 { return v / d })
	if err != nil {
		return nil, err
	}
	return m2c.Map(math.Sqrt), nil
}

// square returns r with every element squared in r's element type.
func square(r Result) (Result, error) {
	dt := r.DType()
	if v, ok := r.Scalar(); ok {
		return Result{dtype: dt, scalar: dt.Cast(v * v)}, nil
	}
	data := r.arr.Data()
	for i, v := range data {
		data[i] = v * v
	}
	y, err := ndarray.New(dt, r.arr.Shape(), data)
	if err != nil {
		return Result{}, nanopsErrorf(opNanVar, err)
	}
	return Result{dtype: dt, arr: y}, nil
}
