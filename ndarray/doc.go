// Package ndarray provides the dense, row-major N-dimensional array used by
// the nanstat reductions, together with the small set of array primitives the
// reduction engine is built on.
//
// 🚀 What is in here?
//
//	• Array      - fixed element type (DType) and fixed shape, flat float64 storage
//	• DType      - Bool, Int32, Int64, Float32, Float64 with a SupportsNaN capability tag
//	• Axis       - "whole array" or a single (possibly negative) axis index
//	• Primitives - IsNaN masks, FillWhere, SumAxis/MeanAxis, ExpandDims, SubBroadcast
//	• Lanes      - explicit iteration over every 1-D slice along an axis
//	• NaN-aware Min/Max/ArgMin/ArgMax
//	• JSON codec - NaN as null, ±Inf as "inf"/"-inf"
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nanstat/ndarray"
//
//	x, err := ndarray.New(ndarray.Float64, []int{2, 3}, []float64{
//		0, 1, math.NaN(),
//		3, 4, 5,
//	})
//	if err != nil {
//		// ErrBadShape / ErrDataLength
//	}
//	sums, _ := x.SumAxis(1) // shape [2]
//
// Arrays are values from the caller's perspective: every primitive returns a
// fresh Array and never writes into its receiver.
//
// Complexity:
//
//   - Constructors, Clone, AsType, Ravel: O(n) time and memory.
//   - Axis reductions: O(n) time, O(n/len(axis)) output memory.
package ndarray
