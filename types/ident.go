package types

import "fmt"

// Ident names a record as a (table, row) pair.
// Rows are either written explicitly in a query (@people:42) or generated
// for the @people:_ form at compile time.
type Ident struct {
	Table string
	Row   uint64
}

// NewIdent creates a new identity value
func NewIdent(table string, row uint64) Ident {
	return Ident{Table: table, Row: row}
}

// Type returns the type code for identities
func (i Ident) Type() TypeCode {
	return TYPE_IDENT
}

// String returns the table:row form used by literals and rendering
func (i Ident) String() string {
	return fmt.Sprintf("%s:%d", i.Table, i.Row)
}
