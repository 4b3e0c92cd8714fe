// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/ndarray"
)

var nan = math.NaN()

func mustNew(t *testing.T, dt ndarray.DType, shape []int, data ...float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.New(dt, shape, data)
	require.NoError(t, err)
	return a
}

func TestIsNaN_Mask(t *testing.T) {
	a := mustNew(t, ndarray.Float32, []int{2, 2}, 1, nan, nan, 4)
	m := a.IsNaN()
	require.Equal(t, ndarray.Bool, m.DType())
	require.Equal(t, []int{2, 2}, m.Shape())
	require.Equal(t, []float64{0, 1, 1, 0}, m.Data())

	ints := mustNew(t, ndarray.Int64, []int{2}, 1, 2)
	require.Equal(t, []float64{0, 0}, ints.IsNaN().Data())
}

func TestFillWhere_CopiesAndKeepsDType(t *testing.T) {
	a := mustNew(t, ndarray.Float32, []int{3}, nan, 2, nan)
	z, err := a.FillWhere(a.IsNaN(), 0)
	require.NoError(t, err)
	require.Equal(t, ndarray.Float32, z.DType())
	require.Equal(t, []float64{0, 2, 0}, z.Data())
	require.True(t, math.IsNaN(a.Data()[0]), "receiver untouched")

	_, err = a.FillWhere(ndarray.FromFloat64s([]float64{1}), 0)
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
	_, err = a.FillWhere(nil, 0)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}

func TestSumAxis_MeanAxis(t *testing.T) {
	a := mustNew(t, ndarray.Int32, []int{2, 3}, 1, 2, 3, 4, 5, 6)

	s, err := a.SumAxis(0)
	require.NoError(t, err)
	require.Equal(t, ndarray.Float64, s.DType())
	require.Equal(t, []float64{5, 7, 9}, s.Data())

	m, err := a.MeanAxis(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5}, m.Data())

	_, err = a.SumAxis(2)
	require.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
}

func TestMeanAxis_ZeroLengthIsNaN(t *testing.T) {
	a, err := ndarray.Zeros(ndarray.Float64, []int{2, 0})
	require.NoError(t, err)
	m, err := a.MeanAxis(1)
	require.NoError(t, err)
	require.Len(t, m.Data(), 2)
	for _, v := range m.Data() {
		require.True(t, math.IsNaN(v))
	}
}

func TestExpandDims(t *testing.T) {
	a := mustNew(t, ndarray.Float64, []int{2, 3}, 1, 2, 3, 4, 5, 6)
	for axis, want := range [][]int{{1, 2, 3}, {2, 1, 3}, {2, 3, 1}} {
		e, err := a.ExpandDims(axis)
		require.NoError(t, err)
		require.Equal(t, want, e.Shape())
		require.Equal(t, a.Data(), e.Data())
	}
	_, err := a.ExpandDims(3)
	require.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
}

func TestSubBroadcast(t *testing.T) {
	a := mustNew(t, ndarray.Float64, []int{2, 3}, 1, 2, 3, 4, 5, 6)

	rowMeans := mustNew(t, ndarray.Float64, []int{2, 1}, 2, 5)
	d, err := a.SubBroadcast(rowMeans)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 1, -1, 0, 1}, d.Data())

	colMeans := mustNew(t, ndarray.Float64, []int{1, 3}, 2.5, 3.5, 4.5)
	d, err = a.SubBroadcast(colMeans)
	require.NoError(t, err)
	require.Equal(t, []float64{-1.5, -1.5, -1.5, 1.5, 1.5, 1.5}, d.Data())

	_, err = a.SubBroadcast(mustNew(t, ndarray.Float64, []int{3}, 1, 2, 3))
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
	_, err = a.SubBroadcast(mustNew(t, ndarray.Float64, []int{2, 2}, 1, 2, 3, 4))
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
}

func TestSubBroadcast_ThreeDimensions(t *testing.T) {
	a := cube(t)
	mid := make([]float64, 8)
	for i := range mid {
		mid[i] = 1
	}
	b := mustNew(t, ndarray.Float64, []int{2, 1, 4}, mid...)
	d, err := a.SubBroadcast(b)
	require.NoError(t, err)
	for i, v := range d.Data() {
		require.Equal(t, float64(i)-1, v)
	}
}

func TestMapZip(t *testing.T) {
	a := mustNew(t, ndarray.Float32, []int{2}, 1, 4)
	sq := a.Map(math.Sqrt)
	require.Equal(t, ndarray.Float64, sq.DType())
	require.Equal(t, []float64{1, 2}, sq.Data())

	z, err := a.Zip(sq, func(x, y float64) float64 { return x - y })
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2}, z.Data())

	_, err = a.Zip(ndarray.FromFloat64s([]float64{1, 2, 3}), nil)
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
}
