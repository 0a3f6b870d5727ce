package db

import "github.com/ayushkumar121/real-db/types"

// Predicate compares a record field against a filter operand. Values of
// different variants are incomparable, so every predicate evaluates false
// on them, including equality.
type Predicate func(field, operand types.Value) bool

// MatchPredicate resolves a predicate by the name a filter program pushed
func MatchPredicate(name string) (Predicate, bool) {
	switch name {
	case "==":
		return func(a, b types.Value) bool {
			return types.Equal(a, b)
		}, true
	case "<":
		return ordered(func(cmp int) bool { return cmp < 0 }), true
	case "<=":
		return ordered(func(cmp int) bool { return cmp <= 0 }), true
	case ">":
		return ordered(func(cmp int) bool { return cmp > 0 }), true
	case ">=":
		return ordered(func(cmp int) bool { return cmp >= 0 }), true
	}
	return nil, false
}

func ordered(accept func(cmp int) bool) Predicate {
	return func(a, b types.Value) bool {
		cmp, ok := types.Compare(a, b)
		return ok && accept(cmp)
	}
}
