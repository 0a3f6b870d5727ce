package types

// Value is a single database value: a record identity, an integer, a float
// or a string. Implementations are small immutable structs.
type Value interface {
	Type() TypeCode
	String() string
}

// Compare orders two values of the same variant; cmp is -1, 0 or 1.
// Values of different variants are incomparable and return ok=false.
// Callers must treat incomparable pairs as unequal rather than falling
// back to an ordering between types.
func Compare(a, b Value) (cmp int, ok bool) {
	if a == nil || b == nil || a.Type() != b.Type() {
		return 0, false
	}

	switch av := a.(type) {
	case Ident:
		bv := b.(Ident)
		if av.Table != bv.Table {
			return compareOrdered(av.Table, bv.Table), true
		}
		return compareOrdered(av.Row, bv.Row), true
	case Int:
		return compareOrdered(av.Val, b.(Int).Val), true
	case Float:
		return compareOrdered(av.Val, b.(Float).Val), true
	case Str:
		return compareOrdered(av.val, b.(Str).val), true
	}

	return 0, false
}

// Equal reports same-variant equality; different variants are never equal
func Equal(a, b Value) bool {
	cmp, ok := Compare(a, b)
	return ok && cmp == 0
}

func compareOrdered[T int64 | uint64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
