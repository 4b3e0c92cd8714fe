// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
)

// DType is the element type of an Array.
//
// Values are always stored as float64; the DType decides how a value is
// normalized on the way in (Cast) and whether NaN is representable.
type DType uint8

const (
	// Bool stores 0 or 1.
	Bool DType = iota
	// Int32 stores integers truncated toward zero and wrapped to 32 bits.
	Int32
	// Int64 stores integers truncated toward zero.
	Int64
	// Float32 stores values rounded to single precision.
	Float32
	// Float64 stores values unchanged.
	Float64
)

// DefaultFloat is the element type non-inexact inputs are promoted to when a
// reduction needs to represent NaN.
const DefaultFloat = Float64

// TypeInfo describes the capabilities of a DType.
type TypeInfo struct {
	Name        string
	Bits        int
	SupportsNaN bool // inexact (floating) types only
}

var typeInfos = [...]TypeInfo{
	Bool:    {Name: "bool", Bits: 8, SupportsNaN: false},
	Int32:   {Name: "int32", Bits: 32, SupportsNaN: false},
	Int64:   {Name: "int64", Bits: 64, SupportsNaN: false},
	Float32: {Name: "float32", Bits: 32, SupportsNaN: true},
	Float64: {Name: "float64", Bits: 64, SupportsNaN: true},
}

// Valid reports whether d is one of the declared element types.
func (d DType) Valid() bool { return int(d) < len(typeInfos) }

// Info returns the capability descriptor for d.
// An invalid DType yields the zero TypeInfo.
func (d DType) Info() TypeInfo {
	if !d.Valid() {
		return TypeInfo{}
	}
	return typeInfos[d]
}

// Inexact reports whether d is a floating type able to hold NaN.
func (d DType) Inexact() bool { return d.Info().SupportsNaN }

// String implements fmt.Stringer.
func (d DType) String() string {
	if !d.Valid() {
		return fmt.Sprintf("dtype(%d)", uint8(d))
	}
	return typeInfos[d].Name
}

// ParseDType maps a dtype name ("float64", "f4", "int", ...) to a DType.
func ParseDType(s string) (DType, error) {
	switch s {
	case "bool", "?":
		return Bool, nil
	case "int32", "i4":
		return Int32, nil
	case "int64", "int", "i8":
		return Int64, nil
	case "float32", "f4", "single":
		return Float32, nil
	case "float64", "float", "f8", "double", "":
		return Float64, nil
	}
	return 0, arrayErrorf("ParseDType("+s+")", ErrUnknownDType)
}

// Cast normalizes v to the value set of d.
//   - Bool: any non-zero value (including NaN) becomes 1.
//   - Int32/Int64: truncation toward zero; NaN and ±Inf become math.MinInt64
//     (Int32 wraps to 32 bits), mirroring the usual C conversion behavior.
//   - Float32: round to nearest single-precision value.
//   - Float64: identity.
func (d DType) Cast(v float64) float64 {
	switch d {
	case Bool:
		if v != 0 {
			return 1
		}
		return 0
	case Int32:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return float64(int32(math.MinInt32))
		}
		return float64(int32(int64(v)))
	case Int64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return float64(math.MinInt64)
		}
		return float64(int64(v))
	case Float32:
		return float64(float32(v))
	default:
		return v
	}
}
