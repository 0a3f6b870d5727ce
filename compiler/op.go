package compiler

import (
	"fmt"
	"strings"

	"github.com/ayushkumar121/real-db/types"
)

// Opcode identifies a program operation
type Opcode int

const (
	OP_START      Opcode = iota // Sentinel marking the program start; no runtime effect
	OP_END                      // Sentinel marking the program end; no runtime effect
	OP_PUSH                     // Push Value
	OP_SET                      // Pop value, key, id; upsert field; push id back
	OP_SELECT                   // Pop id; append it to the result set
	OP_SELECT_ALL               // Pop id; append every row of id's table
	OP_FILTER                   // Pop predicate, value, key, id; scan id's table
	OP_DROP                     // Discard top of stack
	OP_ADD                      // Pop b, a; push a + b
	OP_SUB                      // Pop b, a; push a - b
	OP_IT                       // Push the iterator register
	OP_RANGE                    // Loop head: Count iterations left, Target is the loop exit
	OP_JUMP                     // Set the program counter to Target
)

var opcodeNames = map[Opcode]string{
	OP_START:      "START",
	OP_END:        "END",
	OP_PUSH:       "PUSH",
	OP_SET:        "SET",
	OP_SELECT:     "SELECT",
	OP_SELECT_ALL: "SELECT_ALL",
	OP_FILTER:     "FILTER",
	OP_DROP:       "DROP",
	OP_ADD:        "ADD",
	OP_SUB:        "SUB",
	OP_IT:         "IT",
	OP_RANGE:      "RANGE",
	OP_JUMP:       "JUMP",
}

// String returns the opcode name for diagnostics
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OP(%d)", int(o))
}

// Operation is a single program step. Value is set for OP_PUSH, Count and
// Target for OP_RANGE, and Target for OP_JUMP.
type Operation struct {
	Code   Opcode
	Value  types.Value
	Count  int64
	Target int
}

// Program is the compiled, linear form of one query. Execution never
// mutates it; loop counters live in the VM (see vm.Execute).
type Program []Operation

// String renders a disassembly, one operation per line
func (p Program) String() string {
	var b strings.Builder
	for i, op := range p {
		fmt.Fprintf(&b, "%4d %s", i, op.Code)
		switch op.Code {
		case OP_PUSH:
			fmt.Fprintf(&b, " %s", op.Value)
		case OP_RANGE:
			fmt.Fprintf(&b, " count=%d end=%d", op.Count, op.Target)
		case OP_JUMP:
			fmt.Fprintf(&b, " target=%d", op.Target)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
