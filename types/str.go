package types

// Str represents a string value. String values are never case-folded;
// only field keys are (see db.Handle.Upsert).
type Str struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) Str {
	return Str{val: s}
}

// Type returns the type code for strings
func (s Str) Type() TypeCode {
	return TYPE_STR
}

// String returns the quoted literal form
func (s Str) String() string {
	return "\"" + s.val + "\""
}

// Value returns the internal string value
func (s Str) Value() string {
	return s.val
}
