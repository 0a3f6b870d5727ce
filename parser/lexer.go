package parser

import (
	"strconv"
	"strings"
)

// Tokenize splits a query text into tokens. It never fails: words it
// cannot classify come back as TOKEN_WORD and the compiler rejects those
// with the recorded position.
//
// Words are separated by spaces, carriage returns and newlines. A '#'
// starts a comment that is stripped until the next newline. Double quotes
// toggle string mode; whitespace inside a quoted span does not split the
// word, and the quotes stay part of the word for classification.
func Tokenize(input string) []Token {
	var tokens []Token
	var word strings.Builder

	inString := false
	inComment := false
	line, col := 1, 1
	startLine, startCol := 1, 1

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		word.Reset()
		tokens = append(tokens, Token{
			Type:   classify(w),
			Word:   w,
			Line:   startLine,
			Column: startCol,
		})
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]

		if inComment {
			if ch == '\n' {
				inComment = false
				flush()
				line++
				col = 1
			}
			continue
		}

		switch ch {
		case ' ', '\r', '\n':
			if inString {
				word.WriteByte(ch)
			} else {
				flush()
			}
			if ch == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		case '#':
			if inString {
				word.WriteByte(ch)
			} else {
				inComment = true
			}
			col++
		case '"':
			if word.Len() == 0 {
				startLine, startCol = line, col
			}
			word.WriteByte(ch)
			inString = !inString
			col++
		default:
			if word.Len() == 0 {
				startLine, startCol = line, col
			}
			word.WriteByte(ch)
			col++
		}
	}
	flush()

	return tokens
}

// classify maps a flushed word to its token type. Keywords match
// case-insensitively; everything else is tried as a string, integer,
// float and identity literal in that order.
func classify(word string) TokenType {
	switch strings.ToLower(word) {
	case "set":
		return TOKEN_SET
	case "select":
		return TOKEN_SELECT
	case "select_all":
		return TOKEN_SELECT_ALL
	case "filter":
		return TOKEN_FILTER
	case "drop":
		return TOKEN_DROP
	case "range":
		return TOKEN_RANGE
	case "it":
		return TOKEN_IT
	case "do":
		return TOKEN_DO
	case "end":
		return TOKEN_END
	case "+":
		return TOKEN_PLUS
	case "-":
		return TOKEN_MINUS
	}

	if len(word) >= 2 && word[0] == '"' && word[len(word)-1] == '"' {
		return TOKEN_STRING
	}
	if _, err := strconv.ParseInt(word, 10, 64); err == nil {
		return TOKEN_INT
	}
	if _, err := strconv.ParseFloat(word, 64); err == nil {
		return TOKEN_FLOAT
	}
	if word[0] == '@' && strings.Count(word, ":") == 1 {
		return TOKEN_IDENT
	}

	return TOKEN_WORD
}
