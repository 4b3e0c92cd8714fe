// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/ndarray"
)

func TestNanMinMax_IgnoreNaN(t *testing.T) {
	a := mustNew(t, ndarray.Float32, []int{2, 3}, 3, nan, 1, nan, nan, nan)

	mn, err := a.NanMin(ndarray.AxisOf(1))
	require.NoError(t, err)
	require.Equal(t, ndarray.Float32, mn.DType())
	require.Equal(t, 1.0, mn.Data()[0])
	require.True(t, math.IsNaN(mn.Data()[1]), "all-NaN lane yields NaN")

	mx, err := a.NanMax(ndarray.WholeArray)
	require.NoError(t, err)
	require.Equal(t, 0, mx.NDim())
	v, _ := mx.Item()
	require.Equal(t, 3.0, v)

	mx, err = a.NanMax(ndarray.AxisOf(-2))
	require.NoError(t, err)
	require.Equal(t, []int{3}, mx.Shape())
	require.Equal(t, 3.0, mx.Data()[0])
	require.True(t, math.IsNaN(mx.Data()[1]))
	require.Equal(t, 1.0, mx.Data()[2])
}

func TestNanMinMax_IntegerKeepsDType(t *testing.T) {
	a := mustNew(t, ndarray.Int64, []int{4}, 5, -2, 9, -2)
	mn, err := a.NanMin(ndarray.WholeArray)
	require.NoError(t, err)
	require.Equal(t, ndarray.Int64, mn.DType())
	v, _ := mn.Item()
	require.Equal(t, -2.0, v)
}

func TestNanArgMinMax(t *testing.T) {
	a := mustNew(t, ndarray.Float64, []int{2, 3}, nan, 4, 4, 7, nan, 1)

	am, err := a.NanArgMax(ndarray.AxisOf(1))
	require.NoError(t, err)
	require.Equal(t, ndarray.Int64, am.DType())
	require.Equal(t, []float64{1, 0}, am.Data(), "ties resolve to the first occurrence")

	am, err = a.NanArgMin(ndarray.WholeArray)
	require.NoError(t, err)
	v, _ := am.Item()
	require.Equal(t, 5.0, v, "flat row-major index")
}

func TestNanArgMin_AllNaNFails(t *testing.T) {
	a := mustNew(t, ndarray.Float64, []int{2, 2}, 1, 2, nan, nan)
	_, err := a.NanArgMin(ndarray.AxisOf(1))
	require.ErrorIs(t, err, ndarray.ErrAllNaN)

	// NanMin of the same lane is NaN, not an error
	mn, err := a.NanMin(ndarray.AxisOf(1))
	require.NoError(t, err)
	require.True(t, math.IsNaN(mn.Data()[1]))
}

func TestMinMax_EmptyLaneFails(t *testing.T) {
	z, err := ndarray.Zeros(ndarray.Float64, []int{3, 0})
	require.NoError(t, err)
	_, err = z.NanMax(ndarray.AxisOf(1))
	require.ErrorIs(t, err, ndarray.ErrEmptyReduction)
	_, err = z.NanArgMin(ndarray.WholeArray)
	require.ErrorIs(t, err, ndarray.ErrEmptyReduction)

	// no lanes at all: empty result, no error
	out, err := z.NanMax(ndarray.AxisOf(0))
	require.NoError(t, err)
	require.Equal(t, []int{0}, out.Shape())
}

func TestMinMax_AxisOutOfRange(t *testing.T) {
	a := mustNew(t, ndarray.Float64, []int{2}, 1, 2)
	_, err := a.NanMin(ndarray.AxisOf(1))
	require.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
	_, err = a.NanMax(ndarray.AxisOf(-2))
	require.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
	_, err = ndarray.Scalar(ndarray.Float64, 1).NanArgMax(ndarray.AxisOf(0))
	require.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
}

func TestMinMax_NegativeAxis(t *testing.T) {
	a := mustNew(t, ndarray.Float64, []int{2, 3}, 4, nan, 1, 2, 8, nan)
	last, err := a.NanMax(ndarray.AxisOf(-1))
	require.NoError(t, err)
	explicit, err := a.NanMax(ndarray.AxisOf(1))
	require.NoError(t, err)
	require.Equal(t, []float64{4, 8}, last.Data())
	require.Equal(t, explicit.Data(), last.Data())
}
