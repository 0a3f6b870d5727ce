package parser

// TokenType classifies a lexed word
type TokenType int

const (
	// Keywords
	TOKEN_SET TokenType = iota
	TOKEN_SELECT
	TOKEN_SELECT_ALL
	TOKEN_FILTER
	TOKEN_DROP
	TOKEN_RANGE
	TOKEN_IT
	TOKEN_DO
	TOKEN_END
	TOKEN_PLUS
	TOKEN_MINUS

	// Literals
	TOKEN_INT    // 42
	TOKEN_FLOAT  // 3.14
	TOKEN_STRING // "hello"
	TOKEN_IDENT  // @people:42 or @people:_

	// Anything the lexer could not classify; the compiler always rejects it
	TOKEN_WORD
)

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_SET:
		return "SET"
	case TOKEN_SELECT:
		return "SELECT"
	case TOKEN_SELECT_ALL:
		return "SELECT_ALL"
	case TOKEN_FILTER:
		return "FILTER"
	case TOKEN_DROP:
		return "DROP"
	case TOKEN_RANGE:
		return "RANGE"
	case TOKEN_IT:
		return "IT"
	case TOKEN_DO:
		return "DO"
	case TOKEN_END:
		return "END"
	case TOKEN_PLUS:
		return "PLUS"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_INT:
		return "INT"
	case TOKEN_FLOAT:
		return "FLOAT"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_IDENT:
		return "IDENT"
	case TOKEN_WORD:
		return "WORD"
	default:
		return "UNKNOWN"
	}
}

// Token is one word of a query text with the source position it started at.
// Line and Column are 1-based.
type Token struct {
	Type   TokenType
	Word   string
	Line   int
	Column int
}
