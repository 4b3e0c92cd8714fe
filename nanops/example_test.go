// SPDX-License-Identifier: MIT

package nanops_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nanstat/nanops"
	"github.com/katalvlaran/nanstat/ndarray"
)

// ExampleNanMean averages a row while skipping the missing value.
func ExampleNanMean() {
	x, _ := ndarray.New(ndarray.Float64, []int{6}, []float64{0, 1, 2, math.NaN(), 4, 5})
	r, _ := nanops.NanMean(x)
	v, _ := r.Scalar()
	fmt.Println(v)
	// Output: 2.4
}

// ExampleNanMedian shows the per-row median of a grid with scattered NaNs.
func ExampleNanMedian() {
	nan := math.NaN()
	x, _ := ndarray.New(ndarray.Float64, []int{3, 4}, []float64{
		1, nan, 3, 8,
		nan, nan, 2, 6,
		5, 5, nan, 1,
	})
	r, _ := nanops.NanMedian(x, nanops.WithAxis(1))
	fmt.Println(r.Array())
	// Output: float64[3 4 5]
}

// ExampleNanStd compares the biased and unbiased estimators on one input.
func ExampleNanStd() {
	x, _ := ndarray.New(ndarray.Float32, []int{9}, []float64{2, 4, math.NaN(), 4, 4, 5, 5, 7, 9})
	std, _ := nanops.NanStd(x)
	unbiased, _ := nanops.NanVar(x, nanops.WithDDoF(1))
	s, _ := std.Scalar()
	u, _ := unbiased.Scalar()
	fmt.Println(std.DType(), float32(s), float32(u))
	// Output: float32 2 4.5714283
}

// ExampleReduce dispatches by name, as the CLI and HTTP server do.
func ExampleReduce() {
	op, _ := nanops.ParseOp("nanargmax")
	x, _ := ndarray.New(ndarray.Int64, []int{2, 3}, []float64{3, 9, 9, 7, 1, 0})
	r, _ := nanops.Reduce(op, x, nanops.WithAxis(1))
	fmt.Println(op, r.Values())
	// Output: nanargmax [1 0]
}
