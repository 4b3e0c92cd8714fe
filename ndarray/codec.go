// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - JSON encoding of arrays for the CLI and HTTP surfaces:
//     {"dtype":"float64","shape":[2,2],"data":[1,null,"inf",4]}
//   - NaN is written as null, ±Inf as "inf"/"-inf"; Bool as true/false.
//   - On decode "shape" is optional: nested "data" lists infer it, a bare
//     number decodes as a 0-d array. "dtype" defaults to float64.

package ndarray

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

type arrayDoc struct {
	DType string          `json:"dtype"`
	Shape []int           `json:"shape"`
	Data  json.RawMessage `json:"data"`
}

// AppendJSONValue appends the JSON form of v, interpreted as dt, to buf.
func AppendJSONValue(buf []byte, dt DType, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(buf, "null"...)
	case math.IsInf(v, 1):
		return append(buf, `"inf"`...)
	case math.IsInf(v, -1):
		return append(buf, `"-inf"`...)
	}
	switch dt {
	case Bool:
		return strconv.AppendBool(buf, v != 0)
	case Int32, Int64:
		return strconv.AppendFloat(buf, v, 'f', -1, 64)
	}
	bits := 64
	if dt == Float32 {
		bits = 32
	}
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.AppendFloat(buf, v, format, -1, bits)
}

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) {
	data := make([]byte, 0, 8*len(a.data)+2)
	data = append(data, '[')
	for i, v := range a.data {
		if i > 0 {
			data = append(data, ',')
		}
		data = AppendJSONValue(data, a.dtype, v)
	}
	data = append(data, ']')

	return json.Marshal(arrayDoc{
		DType: a.dtype.String(),
		Shape: append(make([]int, 0, len(a.shape)), a.shape...),
		Data:  data,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// Implementation:
//   - Stage 1: Decode the envelope (a bare list or scalar is taken as "data")
//     and parse dtype.
//   - Stage 2: Flatten "data" (nested lists allowed), inferring a shape.
//   - Stage 3: Reject null/"inf" for integer and bool dtypes.
//   - Stage 4: Apply the explicit shape when given, then build via New.
func (a *Array) UnmarshalJSON(b []byte) error {
	var doc arrayDoc
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] != '{' {
		// bare list or scalar: float64 data with inferred shape
		doc.Data = trimmed
	} else if err := json.Unmarshal(b, &doc); err != nil {
		return arrayErrorf("UnmarshalJSON", err)
	}
	dt, err := ParseDType(doc.DType)
	if err != nil {
		return arrayErrorf("UnmarshalJSON", err)
	}
	if len(bytes.TrimSpace(doc.Data)) == 0 {
		return arrayErrorf("UnmarshalJSON: missing data", ErrDataLength)
	}
	values, inferred, err := decodeNested(doc.Data)
	if err != nil {
		return arrayErrorf("UnmarshalJSON", err)
	}
	if !dt.Inexact() {
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return arrayErrorf(fmt.Sprintf("UnmarshalJSON: %s element %d", dt, i), ErrNaNInf)
			}
		}
	}
	shape := inferred
	if doc.Shape != nil {
		shape = doc.Shape
	}
	parsed, err := New(dt, shape, values)
	if err != nil {
		return arrayErrorf("UnmarshalJSON", err)
	}
	*a = *parsed

	return nil
}

// decodeNested flattens a JSON value (scalar or arbitrarily nested lists)
// into row-major values and the inferred shape. Ragged lists are rejected.
func decodeNested(raw json.RawMessage) ([]float64, []int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		v, err := decodeScalar(raw)
		if err != nil {
			return nil, nil, err
		}
		return []float64{v}, []int{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, err
	}
	values := make([]float64, 0, len(items))
	var inner []int
	for i, item := range items {
		vs, sh, err := decodeNested(item)
		if err != nil {
			return nil, nil, err
		}
		if i == 0 {
			inner = sh
		} else if !sameShape(inner, sh) {
			return nil, nil, fmt.Errorf("ragged nested data at item %d: %w", i, ErrBadShape)
		}
		values = append(values, vs...)
	}

	return values, append([]int{len(items)}, inner...), nil
}

// decodeScalar parses one JSON element: number, null (NaN), bool, or one of
// the strings "nan", "inf", "+inf", "-inf".
func decodeScalar(raw json.RawMessage) (float64, error) {
	s := string(raw)
	switch s {
	case "null":
		return math.NaN(), nil
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, err
		}
		switch str {
		case "nan", "NaN":
			return math.NaN(), nil
		case "inf", "+inf", "Infinity":
			return math.Inf(1), nil
		case "-inf", "-Infinity":
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("invalid element %s", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid element %s: %w", s, err)
	}
	return v, nil
}
