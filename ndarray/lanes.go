// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Describe the 1-D slices ("lanes") of an array along one axis and provide
//     explicit iteration over all of them.
//   - Lane p of an array with shape (d0..dk..dn) and axis k enumerates every
//     index tuple orthogonal to k in row-major order; the reduced output has
//     the same row-major layout with dimension k removed.
//
// Determinism & Performance:
//   - Lanes are visited in increasing output offset; elements within a lane in
//     increasing index order.
//   - Gathering copies a lane into a caller-owned scratch buffer, so kernels may
//     freely reorder or overwrite it without touching the source array.

package ndarray

// Lanes is the lane layout of an array along one axis.
type Lanes struct {
	outer    int   // product of dimensions before the axis
	inner    int   // product of dimensions after the axis (element stride within a lane)
	n        int   // lane length (size of the axis)
	outShape []int // input shape with the axis removed
}

// Lanes returns the lane layout along a concrete axis in [0, ndim).
// Complexity: O(ndim).
func (a *Array) Lanes(axis int) (Lanes, error) {
	if axis < 0 || axis >= len(a.shape) {
		return Lanes{}, arrayErrorf("Lanes", ErrAxisOutOfRange)
	}
	l := Lanes{outer: 1, inner: 1, n: a.shape[axis]}
	l.outShape = make([]int, 0, len(a.shape)-1)
	for k, d := range a.shape {
		switch {
		case k < axis:
			l.outer *= d
			l.outShape = append(l.outShape, d)
		case k > axis:
			l.inner *= d
			l.outShape = append(l.outShape, d)
		}
	}
	return l, nil
}

// Count returns the number of lanes (== size of the reduced output).
func (l Lanes) Count() int { return l.outer * l.inner }

// Len returns the number of elements in each lane.
func (l Lanes) Len() int { return l.n }

// OutShape returns a copy of the reduced output shape.
func (l Lanes) OutShape() []int { return append([]int(nil), l.outShape...) }

// base returns the flat offset of the first element of lane p.
func (l Lanes) base(p int) int {
	o, i := p/l.inner, p%l.inner
	return o*l.n*l.inner + i
}

// Gather copies lane p of a into dst and returns dst[:Len()].
// dst must have capacity for at least Len() elements.
func (a *Array) Gather(l Lanes, p int, dst []float64) []float64 {
	dst = dst[:l.n]
	off := l.base(p)
	for j := 0; j < l.n; j++ {
		dst[j] = a.data[off+j*l.inner]
	}
	return dst
}

// MapLanes applies fn to a copy of every lane along axis and returns the
// raw Float64 results in an array with the axis removed (0-d for 1-D input).
// Implementation:
//   - Stage 1: Resolve the lane layout (axis must already be normalized).
//   - Stage 2: Allocate the pre-sized output and one scratch buffer.
//   - Stage 3: For each lane, gather into scratch and store fn(scratch).
//
// fn owns the scratch slice for the duration of the call and may sort or
// overwrite it.
// Complexity: O(n) plus the cost of fn over every lane.
func (a *Array) MapLanes(axis int, fn func(lane []float64) float64) (*Array, error) {
	l, err := a.Lanes(axis)
	if err != nil {
		return nil, arrayErrorf("MapLanes", err)
	}
	out := newArray(Float64, l.outShape)
	scratch := make([]float64, l.n)
	for p := 0; p < l.Count(); p++ {
		out.data[p] = fn(a.Gather(l, p, scratch))
	}
	return out, nil
}
