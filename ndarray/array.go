// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// MaxElements bounds the extent of any shape accepted by New and Zeros: the
// product of its non-zero dimensions. A zero dimension empties the array but
// not the lanes orthogonal to it, so the extent is what a reduction allocates.
const MaxElements = 1 << 26

// Array is a dense, row-major N-dimensional array of a fixed element type.
// shape holds the dimension sizes, strides the row-major element strides, and
// data the flat storage (len(data) == product(shape)).
// A 0-dimensional Array (empty shape) holds exactly one element.
type Array struct {
	dtype   DType
	shape   []int
	strides []int
	data    []float64
}

// New builds an Array of type dt with the given shape, copying data and
// normalizing every value through dt.Cast.
// Stage 1 (Validate): dtype known, no negative dimensions, len(data) matches.
// Stage 2 (Prepare): copy shape, compute strides.
// Stage 3 (Finalize): copy and cast the data.
// Complexity: O(n).
func New(dt DType, shape []int, data []float64) (*Array, error) {
	if !dt.Valid() {
		return nil, arrayErrorf("New", ErrUnknownDType)
	}
	n, err := shapeSize(shape)
	if err != nil {
		return nil, arrayErrorf("New", err)
	}
	if len(data) != n {
		return nil, arrayErrorf(fmt.Sprintf("New: len(data)=%d, shape %v", len(data), shape), ErrDataLength)
	}

	a := newArray(dt, shape)
	for i, v := range data {
		a.data[i] = dt.Cast(v)
	}

	return a, nil
}

// Zeros returns a zero-filled Array of type dt and the given shape.
func Zeros(dt DType, shape []int) (*Array, error) {
	if !dt.Valid() {
		return nil, arrayErrorf("Zeros", ErrUnknownDType)
	}
	if _, err := shapeSize(shape); err != nil {
		return nil, arrayErrorf("Zeros", err)
	}
	return newArray(dt, shape), nil
}

// Scalar returns a 0-dimensional Array holding v cast to dt.
func Scalar(dt DType, v float64) *Array {
	a := newArray(dt, nil)
	a.data[0] = dt.Cast(v)
	return a
}

// FromFloat64s returns a 1-D Float64 Array holding a copy of data.
func FromFloat64s(data []float64) *Array {
	a := newArray(Float64, []int{len(data)})
	copy(a.data, data)
	return a
}

// newArray allocates storage for a validated shape; no casting is done.
func newArray(dt DType, shape []int) *Array {
	sh := append([]int(nil), shape...)
	n := 1
	for _, d := range sh {
		n *= d
	}
	return &Array{
		dtype:   dt,
		shape:   sh,
		strides: rowMajorStrides(sh),
		data:    make([]float64, n),
	}
}

// shapeSize validates shape and returns the product of its dimensions.
// Negative dimensions and extents above MaxElements are ErrBadShape.
func shapeSize(shape []int) (int, error) {
	n, extent := 1, 1
	for _, d := range shape {
		if d < 0 {
			return 0, ErrBadShape
		}
		if d == 0 {
			n = 0
			continue
		}
		if extent > math.MaxInt/d || extent*d > MaxElements {
			return 0, fmt.Errorf("shape %v exceeds %d elements: %w", shape, MaxElements, ErrBadShape)
		}
		extent *= d
		n *= d
	}
	return n, nil
}

// rowMajorStrides returns C-order element strides for shape.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = s
		s *= shape[k]
	}
	return strides
}

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// NDim returns the number of dimensions (0 for a scalar array).
func (a *Array) NDim() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Extent returns the product of the non-zero dimensions: an upper bound on
// the output size and lane length of any reduction over a.
func (a *Array) Extent() int {
	n := 1
	for _, d := range a.shape {
		if d > 0 {
			n *= d
		}
	}
	return n
}

// Dim returns the size of dimension k, or 0 when k is out of range.
func (a *Array) Dim(k int) int {
	if k < 0 || k >= len(a.shape) {
		return 0
	}
	return a.shape[k]
}

// offset computes the flat index of idx or returns ErrOutOfRange.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[k]
	}
	return off, nil
}

// At returns the element at the given index tuple.
// Complexity: O(ndim).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf(fmt.Sprintf("At%v", idx), err)
	}
	return a.data[off], nil
}

// Item returns the only element of a single-element array of any rank.
func (a *Array) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, arrayErrorf("Item", ErrNotScalar)
	}
	return a.data[0], nil
}

// Data returns a copy of the flat row-major storage.
func (a *Array) Data() []float64 { return append([]float64(nil), a.data...) }

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{
		dtype:   a.dtype,
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    append([]float64(nil), a.data...),
	}
}

// Ravel returns a flattened 1-D copy.
func (a *Array) Ravel() *Array {
	out := newArray(a.dtype, []int{len(a.data)})
	copy(out.data, a.data)
	return out
}

// Reshape returns a copy with a new shape of equal size.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, arrayErrorf("Reshape", err)
	}
	if n != len(a.data) {
		return nil, arrayErrorf(fmt.Sprintf("Reshape(%v) of %v", shape, a.shape), ErrDataLength)
	}
	out := newArray(a.dtype, shape)
	copy(out.data, a.data)
	return out, nil
}

// AsType returns a copy with every element cast to dt.
// Casting to the same DType is a plain copy.
func (a *Array) AsType(dt DType) (*Array, error) {
	if !dt.Valid() {
		return nil, arrayErrorf("AsType", ErrUnknownDType)
	}
	out := newArray(dt, a.shape)
	if dt == a.dtype {
		copy(out.data, a.data)
		return out, nil
	}
	for i, v := range a.data {
		out.data[i] = dt.Cast(v)
	}
	return out, nil
}

// String renders the array as nested brackets, e.g. [[1 2] [3 NaN]].
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString(a.dtype.String())
	if len(a.shape) == 0 {
		fmt.Fprintf(&sb, "(%g)", a.data[0])
		return sb.String()
	}
	a.writeNested(&sb, 0, 0)
	return sb.String()
}

func (a *Array) writeNested(sb *strings.Builder, k, base int) {
	sb.WriteByte('[')
	for i := 0; i < a.shape[k]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		off := base + i*a.strides[k]
		if k == len(a.shape)-1 {
			fmt.Fprintf(sb, "%g", a.data[off])
			continue
		}
		a.writeNested(sb, k+1, off)
	}
	sb.WriteByte(']')
}
