package db

import (
	"sort"

	"github.com/ayushkumar121/real-db/types"
)

// Record is one row's fields, keyed by lowercase field name. Every record
// holds its own identity under "id"; that field is written once at
// creation and survives any later upsert.
type Record map[string]types.Value

func newRecord(id types.Ident) Record {
	return Record{"id": id}
}

// ID returns the record's own identity
func (r Record) ID() types.Ident {
	id, _ := r["id"].(types.Ident)
	return id
}

// Fields returns the field names in sorted order. Insertion order is not
// meaningful, so rendering uses this for deterministic output.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
