// Package nanstat is a small toolkit for statistics over N-dimensional
// arrays with missing values: NaN is treated as "no observation" rather than
// poisoning the result.
//
// 🚀 What is in nanstat?
//
//	• ndarray/  - dense row-major arrays, element types, axis lanes, JSON codec,
//	              NaN-aware min/max/argmin/argmax
//	• nanops/   - NanMean, NanVar, NanStd, NanMedian, Median and name-based Reduce
//	• cmd/nanstat - CLI: reduce a JSON array from a file or stdin, or serve the
//	              same reductions over HTTP
//
// ✨ Guarantees
//
//   - Inputs are never mutated; every reduction returns a fresh Result.
//   - Results keep a floating input's element type; integers promote to float64.
//   - Invalid axes and ddof values are errors, numerical edge cases are NaN.
//
// Quick example:
//
//	x, _ := ndarray.New(ndarray.Float64, []int{2, 3}, []float64{
//		1, math.NaN(), 3,
//		4, 5, 6,
//	})
//	r, _ := nanops.NanMean(x, nanops.WithAxis(1)) // [2 5]
//
//	go install github.com/katalvlaran/nanstat/cmd/nanstat@latest
package nanstat
