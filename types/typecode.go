package types

// TypeCode identifies a Value variant
type TypeCode int

const (
	TYPE_IDENT TypeCode = iota
	TYPE_INT
	TYPE_FLOAT
	TYPE_STR
)

// String returns the name used in error messages
func (t TypeCode) String() string {
	switch t {
	case TYPE_IDENT:
		return "identity"
	case TYPE_INT:
		return "integer"
	case TYPE_FLOAT:
		return "float"
	case TYPE_STR:
		return "string"
	default:
		return "unknown"
	}
}
