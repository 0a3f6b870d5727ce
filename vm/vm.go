package vm

import (
	"fmt"

	"github.com/ayushkumar121/real-db/compiler"
	"github.com/ayushkumar121/real-db/db"
	"github.com/ayushkumar121/real-db/types"
)

// VM executes one compiled program against an exclusively held store
// handle. A fresh VM is made per execution; nothing persists between
// programs except the store itself.
type VM struct {
	stack []types.Value

	// The single iterator register. All range blocks share it, so a
	// nested range overwrites the outer loop's value and the outer loop
	// resumes with whatever the inner loop left behind.
	it int64

	// Remaining iteration counts keyed by the program index of each
	// OP_RANGE. Entries persist for the whole execution: a loop re-entered
	// after exhausting stays exhausted, matching the original in-place
	// counter rewriting without mutating the program.
	loops map[int]int64
}

// Execute runs a program and returns the identities it selected, in
// selection order. The first precondition violation aborts with an error;
// upserts already applied by earlier instructions stay applied.
func Execute(h *db.Handle, program compiler.Program) ([]types.Ident, error) {
	v := &VM{loops: make(map[int]int64)}
	return v.run(h, program)
}

func (v *VM) run(h *db.Handle, program compiler.Program) ([]types.Ident, error) {
	var result []types.Ident

	for i := 0; i >= 0 && i < len(program); {
		op := program[i]

		switch op.Code {
		case compiler.OP_START, compiler.OP_END:
			i++

		case compiler.OP_PUSH:
			v.push(op.Value)
			i++

		case compiler.OP_SET:
			if err := v.need(op.Code, 3); err != nil {
				return nil, err
			}
			value := v.pop()
			key, ok := v.pop().(types.Str)
			if !ok {
				return nil, fmt.Errorf("set: key must be a string")
			}
			id, ok := v.pop().(types.Ident)
			if !ok {
				return nil, fmt.Errorf("set: record id must be an identity")
			}
			h.Upsert(id.Table, id.Row, key.Value(), value)
			v.push(id)
			i++

		case compiler.OP_SELECT:
			if err := v.need(op.Code, 1); err != nil {
				return nil, err
			}
			id, ok := v.pop().(types.Ident)
			if !ok {
				return nil, fmt.Errorf("select: record id must be an identity")
			}
			if _, ok := h.Get(id.Table, id.Row); !ok {
				return nil, fmt.Errorf("select: record %s not found", id)
			}
			result = append(result, id)
			i++

		case compiler.OP_SELECT_ALL:
			if err := v.need(op.Code, 1); err != nil {
				return nil, err
			}
			id, ok := v.pop().(types.Ident)
			if !ok {
				return nil, fmt.Errorf("select_all: record id must be an identity")
			}
			// Only the table component matters; the row is discarded
			rows, ok := h.Rows(id.Table)
			if !ok {
				return nil, fmt.Errorf("select_all: table `%s` not found", id.Table)
			}
			for _, row := range rows {
				result = append(result, types.NewIdent(id.Table, row))
			}
			i++

		case compiler.OP_FILTER:
			if err := v.need(op.Code, 4); err != nil {
				return nil, err
			}
			predName, ok := v.pop().(types.Str)
			if !ok {
				return nil, fmt.Errorf("filter: predicate must be a string")
			}
			pred, ok := db.MatchPredicate(predName.Value())
			if !ok {
				return nil, fmt.Errorf("filter: unknown predicate `%s`", predName.Value())
			}
			operand := v.pop()
			key, ok := v.pop().(types.Str)
			if !ok {
				return nil, fmt.Errorf("filter: key must be a string")
			}
			id, ok := v.pop().(types.Ident)
			if !ok {
				return nil, fmt.Errorf("filter: record id must be an identity")
			}
			rows, ok := h.ScanFilter(id.Table, key.Value(), pred, operand)
			if !ok {
				return nil, fmt.Errorf("filter: table `%s` not found", id.Table)
			}
			for _, row := range rows {
				result = append(result, types.NewIdent(id.Table, row))
			}
			i++

		case compiler.OP_DROP:
			if err := v.need(op.Code, 1); err != nil {
				return nil, err
			}
			v.pop()
			i++

		case compiler.OP_ADD, compiler.OP_SUB:
			if err := v.need(op.Code, 2); err != nil {
				return nil, err
			}
			b, ok := v.pop().(types.Int)
			if !ok {
				return nil, fmt.Errorf("%s: operands must be integers", opName(op.Code))
			}
			a, ok := v.pop().(types.Int)
			if !ok {
				return nil, fmt.Errorf("%s: operands must be integers", opName(op.Code))
			}
			if op.Code == compiler.OP_ADD {
				v.push(types.NewInt(a.Val + b.Val))
			} else {
				v.push(types.NewInt(a.Val - b.Val))
			}
			i++

		case compiler.OP_IT:
			v.push(types.NewInt(v.it))
			i++

		case compiler.OP_RANGE:
			remaining, seen := v.loops[i]
			if !seen {
				remaining = op.Count
			}
			if remaining > 0 {
				// The iterator counts down: N, N-1, ..., 1, never 0
				v.it = remaining
				v.loops[i] = remaining - 1
				i++
			} else {
				v.loops[i] = 0
				i = op.Target
			}

		case compiler.OP_JUMP:
			i = op.Target

		default:
			return nil, fmt.Errorf("invalid operation %s at %d", op.Code, i)
		}
	}

	return result, nil
}

func (v *VM) push(val types.Value) {
	v.stack = append(v.stack, val)
}

func (v *VM) pop() types.Value {
	val := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
	return val
}

func (v *VM) need(code compiler.Opcode, n int) error {
	if len(v.stack) < n {
		return fmt.Errorf("%s: stack must have at least %d value(s), have %d",
			opName(code), n, len(v.stack))
	}
	return nil
}

func opName(code compiler.Opcode) string {
	switch code {
	case compiler.OP_SET:
		return "set"
	case compiler.OP_SELECT:
		return "select"
	case compiler.OP_SELECT_ALL:
		return "select_all"
	case compiler.OP_FILTER:
		return "filter"
	case compiler.OP_DROP:
		return "drop"
	case compiler.OP_ADD:
		return "+"
	case compiler.OP_SUB:
		return "-"
	default:
		return code.String()
	}
}
