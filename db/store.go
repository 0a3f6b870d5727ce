package db

import (
	"strings"
	"sync"

	"github.com/ayushkumar121/real-db/types"
)

// Store owns every table for the life of the process. Tables are created
// lazily on first write and never dropped.
//
// All access goes through an exclusively locked Handle, so concurrent
// programs are strictly serialized: one program's operations never
// interleave with another's. There is no finer-grained locking and no
// distinction between read-only and writing programs.
type Store struct {
	mu     sync.Mutex
	tables map[string]map[uint64]Record
}

// NewStore creates a new empty store
func NewStore() *Store {
	return &Store{
		tables: make(map[string]map[uint64]Record),
	}
}

// Acquire takes the store's exclusive lock and returns the handle a
// program executes through. The caller holds it from before execution
// until the response has been rendered from the store, then Releases it.
func (s *Store) Acquire() *Handle {
	s.mu.Lock()
	return &Handle{store: s}
}

// Handle is the store with its exclusive lock held
type Handle struct {
	store *Store
}

// Release drops the exclusive lock. The handle must not be used after.
func (h *Handle) Release() {
	h.store.mu.Unlock()
}

// Upsert writes key -> value into the record at (table, row), creating
// the table and record as needed. Keys fold to lowercase; values are
// stored as-is. Writes to the reserved "id" field are discarded so a
// record's identity is never clobbered.
func (h *Handle) Upsert(table string, row uint64, key string, value types.Value) {
	key = strings.ToLower(key)

	tbl, ok := h.store.tables[table]
	if !ok {
		tbl = make(map[uint64]Record)
		h.store.tables[table] = tbl
	}

	rec, ok := tbl[row]
	if !ok {
		rec = newRecord(types.NewIdent(table, row))
		tbl[row] = rec
	}

	if key == "id" {
		return
	}
	rec[key] = value
}

// Get returns the record at (table, row)
func (h *Handle) Get(table string, row uint64) (Record, bool) {
	tbl, ok := h.store.tables[table]
	if !ok {
		return nil, false
	}
	rec, ok := tbl[row]
	return rec, ok
}

// Rows returns every row of a table in arbitrary order, and whether the
// table exists at all.
func (h *Handle) Rows(table string) ([]uint64, bool) {
	tbl, ok := h.store.tables[table]
	if !ok {
		return nil, false
	}
	rows := make([]uint64, 0, len(tbl))
	for row := range tbl {
		rows = append(rows, row)
	}
	return rows, true
}

// ScanFilter walks every record of a table and returns the rows whose
// field named key satisfies pred against operand. There are no indexes;
// this is a full linear scan by design, O(records) per call.
func (h *Handle) ScanFilter(table, key string, pred Predicate, operand types.Value) ([]uint64, bool) {
	tbl, ok := h.store.tables[table]
	if !ok {
		return nil, false
	}

	key = strings.ToLower(key)
	var rows []uint64
	for row, rec := range tbl {
		if field, ok := rec[key]; ok && pred(field, operand) {
			rows = append(rows, row)
		}
	}
	return rows, true
}
