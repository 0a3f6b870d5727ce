package types

import "strconv"

// Int represents a signed 64-bit integer value
type Int struct {
	Val int64
}

// NewInt creates a new integer value
func NewInt(val int64) Int {
	return Int{Val: val}
}

// Type returns the type code for integers
func (i Int) Type() TypeCode {
	return TYPE_INT
}

// String returns the decimal representation
func (i Int) String() string {
	return strconv.FormatInt(i.Val, 10)
}
