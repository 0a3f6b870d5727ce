package types

import "strconv"

// Float represents a 64-bit floating point value
type Float struct {
	Val float64
}

// NewFloat creates a new float value
func NewFloat(val float64) Float {
	return Float{Val: val}
}

// Type returns the type code for floats
func (f Float) Type() TypeCode {
	return TYPE_FLOAT
}

// String returns the shortest representation that round-trips
func (f Float) String() string {
	return strconv.FormatFloat(f.Val, 'g', -1, 64)
}
