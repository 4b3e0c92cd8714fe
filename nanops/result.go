// SPDX-License-Identifier: MIT

package nanops

import (
	json "github.com/goccy/go-json"

	"github.com/katalvlaran/nanstat/ndarray"
)

// Result is the outcome of a reduction: either a bare scalar (the reduced
// shape was 0-dimensional) or an array with the reduced axis removed.
// Each call returns a fresh Result owned by the caller.
type Result struct {
	dtype  ndarray.DType
	scalar float64
	arr    *ndarray.Array // nil for scalars
}

// newResult unwraps single-element 0-d arrays into scalars.
func newResult(y *ndarray.Array) Result {
	if y.NDim() == 0 && y.Size() == 1 {
		v, _ := y.Item()
		return Result{dtype: y.DType(), scalar: v}
	}
	return Result{dtype: y.DType(), arr: y}
}

// IsScalar reports whether the result is a bare scalar.
func (r Result) IsScalar() bool { return r.arr == nil }

// DType returns the element type of the result.
func (r Result) DType() ndarray.DType { return r.dtype }

// Scalar returns the scalar value; ok is false for array results.
func (r Result) Scalar() (v float64, ok bool) {
	if r.arr != nil {
		return 0, false
	}
	return r.scalar, true
}

// Array returns the result as an array; scalars become 0-d arrays.
func (r Result) Array() *ndarray.Array {
	if r.arr == nil {
		return ndarray.Scalar(r.dtype, r.scalar)
	}
	return r.arr.Clone()
}

// Shape returns the result shape (empty for scalars).
func (r Result) Shape() []int {
	if r.arr == nil {
		return []int{}
	}
	return r.arr.Shape()
}

// Values returns the flat row-major values (one element for scalars).
func (r Result) Values() []float64 {
	if r.arr == nil {
		return []float64{r.scalar}
	}
	return r.arr.Data()
}

// MarshalJSON encodes {"dtype":..,"scalar":v} or {"dtype":..,"shape":..,"data":..}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.arr != nil {
		return r.arr.MarshalJSON()
	}
	type scalarDoc struct {
		DType  string          `json:"dtype"`
		Scalar json.RawMessage `json:"scalar"`
	}
	return json.Marshal(scalarDoc{
		DType:  r.dtype.String(),
		Scalar: ndarray.AppendJSONValue(nil, r.dtype, r.scalar),
	})
}
