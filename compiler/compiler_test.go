package compiler

import (
	"strings"
	"testing"

	"github.com/ayushkumar121/real-db/parser"
	"github.com/ayushkumar121/real-db/types"
)

func compile(t *testing.T, query string) Program {
	t.Helper()
	program, err := Compile(parser.Tokenize(query))
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", query, err)
	}
	return program
}

func TestCompileSentinels(t *testing.T) {
	program := compile(t, "drop")

	if program[0].Code != OP_START {
		t.Errorf("program[0] = %s, want START", program[0].Code)
	}
	if program[len(program)-1].Code != OP_END {
		t.Errorf("program[last] = %s, want END", program[len(program)-1].Code)
	}
}

func TestCompileLiterals(t *testing.T) {
	program := compile(t, "42 3.5 \"hi\" @people:7")

	want := []types.Value{
		types.NewInt(42),
		types.NewFloat(3.5),
		types.NewStr("hi"),
		types.NewIdent("people", 7),
	}

	// Skip the START sentinel
	for i, wantVal := range want {
		op := program[i+1]
		if op.Code != OP_PUSH {
			t.Fatalf("program[%d] = %s, want PUSH", i+1, op.Code)
		}
		if !types.Equal(op.Value, wantVal) {
			t.Errorf("program[%d] pushes %v, want %v", i+1, op.Value, wantVal)
		}
	}
}

func TestCompileKeywords(t *testing.T) {
	program := compile(t, "set select select_all filter drop + -")

	want := []Opcode{OP_SET, OP_SELECT, OP_SELECT_ALL, OP_FILTER, OP_DROP, OP_ADD, OP_SUB}
	for i, code := range want {
		if program[i+1].Code != code {
			t.Errorf("program[%d] = %s, want %s", i+1, program[i+1].Code, code)
		}
	}
}

func TestCompileRandomIdentity(t *testing.T) {
	a := compile(t, "@people:_")[1].Value.(types.Ident)
	b := compile(t, "@people:_")[1].Value.(types.Ident)

	if a.Table != "people" {
		t.Errorf("table = %q, want people", a.Table)
	}
	// Two draws from a 64-bit source colliding means the generator is broken
	if a.Row == b.Row {
		t.Errorf("two @people:_ literals resolved to the same row %d", a.Row)
	}
}

func TestCompileRangePatching(t *testing.T) {
	program := compile(t, "range 2 do it end")

	// 0 START, 1 RANGE, 2 IT, 3 JUMP, 4 END
	if program[1].Code != OP_RANGE || program[1].Count != 2 {
		t.Fatalf("program[1] = %s count=%d, want RANGE count=2", program[1].Code, program[1].Count)
	}
	if program[1].Target != 4 {
		t.Errorf("range exit = %d, want 4", program[1].Target)
	}
	if program[3].Code != OP_JUMP || program[3].Target != 1 {
		t.Errorf("program[3] = %s target=%d, want JUMP target=1", program[3].Code, program[3].Target)
	}
}

func TestCompileNestedRanges(t *testing.T) {
	program := compile(t, "range 2 do range 3 do it end end")

	// 0 START, 1 RANGE outer, 2 RANGE inner, 3 IT, 4 JUMP->2, 5 JUMP->1, 6 END
	outer, inner := program[1], program[2]
	if outer.Code != OP_RANGE || outer.Count != 2 || outer.Target != 6 {
		t.Errorf("outer = %s count=%d end=%d, want RANGE count=2 end=6", outer.Code, outer.Count, outer.Target)
	}
	if inner.Code != OP_RANGE || inner.Count != 3 || inner.Target != 5 {
		t.Errorf("inner = %s count=%d end=%d, want RANGE count=3 end=5", inner.Code, inner.Count, inner.Target)
	}
	if program[4].Target != 2 || program[5].Target != 1 {
		t.Errorf("jumps target %d and %d, want 2 and 1", program[4].Target, program[5].Target)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"unknown word", "bogus", "unknown word"},
		{"word position", "\n  bogus", "line 2:3"},
		{"unmatched end", "end", "unmatched end"},
		{"it outside range", "it", "outside a range"},
		{"range without count", "range do end", "integer count"},
		{"range at end of input", "range", "integer count"},
		{"range without end", "range 3 do it", "matching end"},
		{"malformed identity row", "@people:abc", "row must be digits or _"},
		{"identity empty table", "@:1", "malformed identity"},
		{"it after closed range", "range 1 do end it", "outside a range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(parser.Tokenize(tt.query))
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", tt.query)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Compile(%q) error = %q, want it to contain %q", tt.query, err, tt.want)
			}
		})
	}
}

func TestProgramString(t *testing.T) {
	out := compile(t, "range 1 do it end").String()

	for _, want := range []string{"START", "RANGE count=1 end=4", "IT", "JUMP target=1", "END"} {
		if !strings.Contains(out, want) {
			t.Errorf("disassembly missing %q:\n%s", want, out)
		}
	}
}
