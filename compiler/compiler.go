package compiler

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/ayushkumar121/real-db/parser"
	"github.com/ayushkumar121/real-db/types"
)

// Compile lowers a token stream into a flat program. Structured loop
// syntax (range N do ... end) becomes an OP_RANGE/OP_JUMP pair with
// absolute targets, resolved through a stack of open scopes: range pushes
// its own program index, end pops it, patches the range's exit target to
// one past the backward jump, and emits that jump.
func Compile(tokens []parser.Token) (Program, error) {
	program := Program{{Code: OP_START}}

	// Indexes of OP_RANGE operations whose end has not been seen yet
	var scopes []int

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Type {
		case parser.TOKEN_STRING:
			text := strings.TrimSuffix(strings.TrimPrefix(tok.Word, "\""), "\"")
			program = append(program, Operation{Code: OP_PUSH, Value: types.NewStr(text)})

		case parser.TOKEN_INT:
			n, err := strconv.ParseInt(tok.Word, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad integer `%s` at line %d:%d", tok.Word, tok.Line, tok.Column)
			}
			program = append(program, Operation{Code: OP_PUSH, Value: types.NewInt(n)})

		case parser.TOKEN_FLOAT:
			f, err := strconv.ParseFloat(tok.Word, 64)
			if err != nil {
				return nil, fmt.Errorf("bad float `%s` at line %d:%d", tok.Word, tok.Line, tok.Column)
			}
			program = append(program, Operation{Code: OP_PUSH, Value: types.NewFloat(f)})

		case parser.TOKEN_IDENT:
			id, err := parseIdent(tok)
			if err != nil {
				return nil, err
			}
			program = append(program, Operation{Code: OP_PUSH, Value: id})

		case parser.TOKEN_SET:
			program = append(program, Operation{Code: OP_SET})
		case parser.TOKEN_SELECT:
			program = append(program, Operation{Code: OP_SELECT})
		case parser.TOKEN_SELECT_ALL:
			program = append(program, Operation{Code: OP_SELECT_ALL})
		case parser.TOKEN_FILTER:
			program = append(program, Operation{Code: OP_FILTER})
		case parser.TOKEN_DROP:
			program = append(program, Operation{Code: OP_DROP})
		case parser.TOKEN_PLUS:
			program = append(program, Operation{Code: OP_ADD})
		case parser.TOKEN_MINUS:
			program = append(program, Operation{Code: OP_SUB})

		case parser.TOKEN_RANGE:
			if i+1 >= len(tokens) || tokens[i+1].Type != parser.TOKEN_INT {
				return nil, fmt.Errorf("range needs an integer count at line %d:%d", tok.Line, tok.Column)
			}
			count, err := strconv.ParseInt(tokens[i+1].Word, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad range count `%s` at line %d:%d", tokens[i+1].Word, tok.Line, tok.Column)
			}
			scopes = append(scopes, len(program))
			program = append(program, Operation{Code: OP_RANGE, Count: count})
			i++

		case parser.TOKEN_IT:
			if len(scopes) == 0 {
				return nil, fmt.Errorf("it used outside a range block at line %d:%d", tok.Line, tok.Column)
			}
			program = append(program, Operation{Code: OP_IT})

		case parser.TOKEN_DO:
			// Pure syntax; emits nothing

		case parser.TOKEN_END:
			if len(scopes) == 0 {
				return nil, fmt.Errorf("unmatched end at line %d:%d", tok.Line, tok.Column)
			}
			start := scopes[len(scopes)-1]
			scopes = scopes[:len(scopes)-1]
			program[start].Target = len(program) + 1
			program = append(program, Operation{Code: OP_JUMP, Target: start})

		case parser.TOKEN_WORD:
			return nil, fmt.Errorf("unknown word `%s` at line %d:%d", tok.Word, tok.Line, tok.Column)

		default:
			return nil, fmt.Errorf("unexpected token %s at line %d:%d", tok.Type, tok.Line, tok.Column)
		}
	}

	if len(scopes) > 0 {
		return nil, fmt.Errorf("range without a matching end")
	}

	program = append(program, Operation{Code: OP_END})
	return program, nil
}

// parseIdent resolves an @table:row literal. A row of _ takes a fresh
// value from the process-wide random source; anything other than digits
// or _ is rejected here rather than at runtime.
func parseIdent(tok parser.Token) (types.Ident, error) {
	body := strings.TrimPrefix(tok.Word, "@")
	table, rowText, found := strings.Cut(body, ":")
	if !found || table == "" {
		return types.Ident{}, fmt.Errorf("malformed identity `%s` at line %d:%d", tok.Word, tok.Line, tok.Column)
	}

	if rowText == "_" {
		return types.NewIdent(table, rand.Uint64()), nil
	}

	row, err := strconv.ParseUint(rowText, 10, 64)
	if err != nil {
		return types.Ident{}, fmt.Errorf("malformed identity `%s` at line %d:%d: row must be digits or _", tok.Word, tok.Line, tok.Column)
	}
	return types.NewIdent(table, row), nil
}
