// SPDX-License-Identifier: MIT

package nanops

import (
	"strings"

	"github.com/katalvlaran/nanstat/ndarray"
)

// Op names a reduction for name-based dispatch.
type Op uint8

const (
	OpNanMean Op = iota
	OpNanVar
	OpNanStd
	OpNanMedian
	OpMedian
	OpNanMin
	OpNanMax
	OpNanArgMin
	OpNanArgMax
)

var opNames = [...]string{
	OpNanMean:   "nanmean",
	OpNanVar:    "nanvar",
	OpNanStd:    "nanstd",
	OpNanMedian: "nanmedian",
	OpMedian:    "median",
	OpNanMin:    "nanmin",
	OpNanMax:    "nanmax",
	OpNanArgMin: "nanargmin",
	OpNanArgMax: "nanargmax",
}

var opFuncs = [...]func(*ndarray.Array, ...Option) (Result, error){
	OpNanMean:   NanMean,
	OpNanVar:    NanVar,
	OpNanStd:    NanStd,
	OpNanMedian: NanMedian,
	OpMedian:    Median,
	OpNanMin:    NanMin,
	OpNanMax:    NanMax,
	OpNanArgMin: NanArgMin,
	OpNanArgMax: NanArgMax,
}

// Ops returns every reduction in declaration order.
func Ops() []Op {
	ops := make([]Op, len(opNames))
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// String implements fmt.Stringer.
func (op Op) String() string {
	if int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// UsesDDoF reports whether the reduction honors WithDDoF.
func (op Op) UsesDDoF() bool { return op == OpNanVar || op == OpNanStd }

// ParseOp maps a case-insensitive reduction name to an Op.
func ParseOp(s string) (Op, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, nanopsErrorf("ParseOp("+s+")", ErrUnknownOp)
}

// Reduce runs the named reduction over x.
func Reduce(op Op, x *ndarray.Array, opts ...Option) (Result, error) {
	if int(op) >= len(opFuncs) {
		return Result{}, nanopsErrorf("Reduce", ErrUnknownOp)
	}
	return opFuncs[op](x, opts...)
}
