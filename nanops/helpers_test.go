// SPDX-License-Identifier: MIT

package nanops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/nanops"
	"github.com/katalvlaran/nanstat/ndarray"
)

var nan = math.NaN()

func mustNew(t testing.TB, dt ndarray.DType, shape []int, data ...float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.New(dt, shape, data)
	require.NoError(t, err)
	return a
}

func vec(t testing.TB, data ...float64) *ndarray.Array {
	t.Helper()
	return mustNew(t, ndarray.Float64, []int{len(data)}, data...)
}

// scalarOf asserts r is a scalar and returns its value.
func scalarOf(t *testing.T, r nanops.Result) float64 {
	t.Helper()
	v, ok := r.Scalar()
	require.True(t, ok, "expected a scalar result, got shape %v", r.Shape())
	return v
}

// scipyGrid is arange(30).reshape(5, 6) with flat indices 3, 8, 13, ... set to NaN.
func scipyGrid(t testing.TB) *ndarray.Array {
	t.Helper()
	data := make([]float64, 30)
	for i := range data {
		data[i] = float64(i)
		if i%5 == 3 {
			data[i] = nan
		}
	}
	return mustNew(t, ndarray.Float64, []int{5, 6}, data...)
}

// refMeanVar computes the mean and variance of the non-NaN values directly.
func refMeanVar(values []float64, ddof int) (mean, variance float64) {
	var sum float64
	var n int
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return nan, nan
	}
	mean = sum / float64(n)
	var ss float64
	for _, v := range values {
		if !math.IsNaN(v) {
			ss += (v - mean) * (v - mean)
		}
	}
	return mean, ss / float64(n-ddof)
}

// requireSameFloats compares element-wise, treating NaN as equal to NaN.
func requireSameFloats(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %v", i, got[i])
			continue
		}
		require.InDelta(t, want[i], got[i], delta, "index %d", i)
	}
}
