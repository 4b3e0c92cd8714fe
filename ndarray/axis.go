// SPDX-License-Identifier: MIT

package ndarray

import "strconv"

// Axis selects what a reduction runs over: either the whole (flattened)
// array, or a single axis index. Negative indices count from the end.
//
// The zero value is axis 0.
type Axis struct {
	index int
	whole bool
}

// WholeArray reduces over every element of the flattened array.
var WholeArray = Axis{whole: true}

// AxisOf selects a single axis. i may be negative.
func AxisOf(i int) Axis { return Axis{index: i} }

// IsWhole reports whether a selects the whole array.
func (a Axis) IsWhole() bool { return a.whole }

// Index returns the raw (unnormalized) axis index; meaningless for WholeArray.
func (a Axis) Index() int { return a.index }

// String implements fmt.Stringer ("None" for WholeArray).
func (a Axis) String() string {
	if a.whole {
		return "None"
	}
	return strconv.Itoa(a.index)
}

// ParseAxis parses "none"/"None"/"" as WholeArray and integers as AxisOf.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "", "none", "None", "null":
		return WholeArray, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return Axis{}, arrayErrorf("ParseAxis("+s+")", err)
	}
	return AxisOf(i), nil
}
