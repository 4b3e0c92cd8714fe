// SPDX-License-Identifier: MIT

// Package nanops: functional options for the reductions.
//   - WithAxis / WithWholeArray / WithReduceAxis select what to reduce over;
//     without one, each reduction applies its documented default.
//   - WithDDoF sets the delta degrees of freedom for NanVar/NanStd; values
//     other than 0 and 1 are reported as ErrInvalidDDoF by the reduction,
//     not by the option.

package nanops

import "github.com/katalvlaran/nanstat/ndarray"

// DefaultDDoF is the biased (population) estimator.
const DefaultDDoF = 0

// Option mutates Options. Safe to apply repeatedly; the last one wins.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	axis    ndarray.Axis
	axisSet bool
	ddof    int
}

// WithAxis reduces along axis i (negative counts from the end).
func WithAxis(i int) Option {
	return func(o *Options) {
		o.axis = ndarray.AxisOf(i)
		o.axisSet = true
	}
}

// WithWholeArray reduces over the flattened array.
func WithWholeArray() Option {
	return WithReduceAxis(ndarray.WholeArray)
}

// WithReduceAxis applies an already-parsed axis selection.
func WithReduceAxis(a ndarray.Axis) Option {
	return func(o *Options) {
		o.axis = a
		o.axisSet = true
	}
}

// WithDDoF sets the delta degrees of freedom for NanVar/NanStd.
func WithDDoF(ddof int) Option {
	return func(o *Options) { o.ddof = ddof }
}

// gatherOptions applies opts over the defaults; def is used when no axis
// option was given.
func gatherOptions(def ndarray.Axis, opts []Option) Options {
	o := Options{ddof: DefaultDDoF}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.axisSet {
		o.axis = def
	}
	return o
}
