package parser

import "testing"

func TestTokenizeKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"set", TOKEN_SET},
		{"select", TOKEN_SELECT},
		{"select_all", TOKEN_SELECT_ALL},
		{"filter", TOKEN_FILTER},
		{"drop", TOKEN_DROP},
		{"range", TOKEN_RANGE},
		{"it", TOKEN_IT},
		{"do", TOKEN_DO},
		{"end", TOKEN_END},
		{"+", TOKEN_PLUS},
		{"-", TOKEN_MINUS},
		{"SET", TOKEN_SET},
		{"Select_All", TOKEN_SELECT_ALL},
		{"RANGE", TOKEN_RANGE},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Tokenize(%q) produced %d tokens, want 1", tt.input, len(tokens))
			}
			if tokens[0].Type != tt.want {
				t.Errorf("Tokenize(%q) type = %s, want %s", tt.input, tokens[0].Type, tt.want)
			}
		})
	}
}

func TestTokenizeLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"42", TOKEN_INT},
		{"-17", TOKEN_INT},
		{"0", TOKEN_INT},
		{"3.14", TOKEN_FLOAT},
		{"-0.5", TOKEN_FLOAT},
		{"\"hello\"", TOKEN_STRING},
		{"\"\"", TOKEN_STRING},
		{"@people:42", TOKEN_IDENT},
		{"@people:_", TOKEN_IDENT},
		{"@t:xyz", TOKEN_IDENT}, // shape only; the compiler validates the row
		{"bogus", TOKEN_WORD},
		{"@a:b:c", TOKEN_WORD},
		{"@noseparator", TOKEN_WORD},
		{"==", TOKEN_WORD}, // predicates travel as quoted strings, not bare words
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Tokenize(%q) produced %d tokens, want 1", tt.input, len(tokens))
			}
			if tokens[0].Type != tt.want {
				t.Errorf("Tokenize(%q) type = %s, want %s", tt.input, tokens[0].Type, tt.want)
			}
			if tokens[0].Word != tt.input {
				t.Errorf("Tokenize(%q) word = %q, want %q", tt.input, tokens[0].Word, tt.input)
			}
		})
	}
}

func TestTokenizeSplitting(t *testing.T) {
	tokens := Tokenize("@people:1 \"name\" \"ada\" set\r\ndrop")
	wantTypes := []TokenType{TOKEN_IDENT, TOKEN_STRING, TOKEN_STRING, TOKEN_SET, TOKEN_DROP}

	if len(tokens) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantTypes))
	}
	for i, want := range wantTypes {
		if tokens[i].Type != want {
			t.Errorf("token[%d] type = %s, want %s", i, tokens[i].Type, want)
		}
	}
}

func TestTokenizeQuotedWhitespace(t *testing.T) {
	tokens := Tokenize("\"two words\"")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if tokens[0].Type != TOKEN_STRING {
		t.Errorf("type = %s, want STRING", tokens[0].Type)
	}
	if tokens[0].Word != "\"two words\"" {
		t.Errorf("word = %q, want %q", tokens[0].Word, "\"two words\"")
	}
}

func TestTokenizeComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"whole line", "# just a comment\nselect", []string{"select"}},
		{"trailing", "drop # discard the rest\ndrop", []string{"drop", "drop"}},
		{"word before hash flushes", "drop# tail", []string{"drop"}},
		{"comment only", "# nothing here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.want))
			}
			for i, want := range tt.want {
				if tokens[i].Word != want {
					t.Errorf("token[%d] = %q, want %q", i, tokens[i].Word, want)
				}
			}
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("drop\n  select")
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}

	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("drop at %d:%d, want 1:1", tokens[0].Line, tokens[0].Column)
	}
	if tokens[1].Line != 2 || tokens[1].Column != 3 {
		t.Errorf("select at %d:%d, want 2:3", tokens[1].Line, tokens[1].Column)
	}
}

func TestTokenizeNeverEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n", "# comment\n# another"} {
		if tokens := Tokenize(input); len(tokens) != 0 {
			t.Errorf("Tokenize(%q) = %v, want no tokens", input, tokens)
		}
	}
}
