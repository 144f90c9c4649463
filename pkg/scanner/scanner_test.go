package scanner

import (
	"bytes"
	"testing"

	"github.com/yaklabco/spacelint/pkg/source"
)

// tokenStrings maps each token to its source text for easy assertions.
func tokenStrings(content []byte, tokens []source.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = string(tok.Text(content))
	}
	return out
}

func kindsOf(tokens []source.Token) []source.TokenKind {
	out := make([]source.TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeCoversAllBytes(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"x = foo( a, b )\n",
		"if (a == b) { return; }\n",
		"// comment\nint x;\n",
		"/* multi\nline */ y\n",
		"s = \"a ( b\" + 'c'\n",
		"a\r\nb\r\n",
		"weird \x01 bytes",
		"# hash comment\nx\n",
		"arr[i+1] = {1, 2}\n",
	}

	for _, input := range inputs {
		content := []byte(input)
		tokens := Tokenize(content)
		if !source.ValidateTokens(tokens, len(content)) {
			t.Errorf("tokens for %q do not cover content contiguously: %+v", input, tokens)
		}
	}
}

func TestTokenizeKinds(t *testing.T) {
	content := []byte("if (x1 == 42) { a, b; }")
	tokens := Tokenize(content)

	want := []source.TokenKind{
		source.TokKeyword,      // if
		source.TokWhitespace,   // ' '
		source.TokParenOpen,    // (
		source.TokIdent,        // x1
		source.TokWhitespace,   // ' '
		source.TokOperator,     // ==
		source.TokWhitespace,   // ' '
		source.TokNumber,       // 42
		source.TokParenClose,   // )
		source.TokWhitespace,   // ' '
		source.TokBraceOpen,    // {
		source.TokWhitespace,   // ' '
		source.TokIdent,        // a
		source.TokComma,        // ,
		source.TokWhitespace,   // ' '
		source.TokIdent,        // b
		source.TokSemicolon,    // ;
		source.TokWhitespace,   // ' '
		source.TokBraceClose,   // }
	}

	got := kindsOf(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), tokenStrings(content, tokens))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d (%q): kind = %v, want %v",
				i, tokens[i].Text(content), got[i], want[i])
		}
	}
}

func TestTokenizeWhitespaceRuns(t *testing.T) {
	content := []byte("a \t b")
	tokens := Tokenize(content)

	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(tokens), tokenStrings(content, tokens))
	}
	if tokens[1].Kind != source.TokWhitespace {
		t.Errorf("middle token kind = %v", tokens[1].Kind)
	}
	if !bytes.Equal(tokens[1].Text(content), []byte(" \t ")) {
		t.Errorf("space and tab should form one run, got %q", tokens[1].Text(content))
	}
}

func TestTokenizeOperatorRuns(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a==b", "=="},
		{"a<=b", "<="},
		{"a&&b", "&&"},
		{"a+=b", "+="},
		{"a=b", "="},
	}

	for _, tt := range tests {
		content := []byte(tt.input)
		tokens := Tokenize(content)
		if len(tokens) != 3 {
			t.Errorf("%q: got %d tokens, want 3", tt.input, len(tokens))
			continue
		}
		op := tokens[1]
		if op.Kind != source.TokOperator {
			t.Errorf("%q: middle token kind = %v, want operator", tt.input, op.Kind)
		}
		if got := string(op.Text(content)); got != tt.want {
			t.Errorf("%q: operator text = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenizeStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // text of the string token
	}{
		{"double quoted", `x = "a ( b"`, `"a ( b"`},
		{"single quoted", `x = 'c'`, `'c'`},
		{"escaped quote", `x = "a\"b"`, `"a\"b"`},
		{"unterminated stops at newline", "x = \"abc\ny", `"abc`},
		{"backtick spans newline", "x = `a\nb`", "`a\nb`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.input)
			tokens := Tokenize(content)

			var found bool
			for _, tok := range tokens {
				if tok.Kind == source.TokString {
					found = true
					if got := string(tok.Text(content)); got != tt.want {
						t.Errorf("string token = %q, want %q", got, tt.want)
					}
					break
				}
			}
			if !found {
				t.Errorf("no string token in %v", tokenStrings(content, tokens))
			}
		})
	}
}

func TestTokenizeComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"line comment", "x // trailing ( [\ny", "// trailing ( ["},
		{"hash comment", "x # note\ny", "# note"},
		{"block comment", "x /* a\nb */ y", "/* a\nb */"},
		{"unterminated block", "x /* open", "/* open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.input)
			tokens := Tokenize(content)

			var found bool
			for _, tok := range tokens {
				if tok.Kind == source.TokComment {
					found = true
					if got := string(tok.Text(content)); got != tt.want {
						t.Errorf("comment token = %q, want %q", got, tt.want)
					}
					break
				}
			}
			if !found {
				t.Errorf("no comment token in %v", tokenStrings(content, tokens))
			}
		})
	}
}

func TestTokenizeCRLF(t *testing.T) {
	content := []byte("a\r\nb")
	tokens := Tokenize(content)

	if len(tokens) != 3 {
		t.Fatalf("got %d tokens: %v", len(tokens), tokenStrings(content, tokens))
	}
	if tokens[1].Kind != source.TokNewline {
		t.Errorf("CRLF token kind = %v, want newline", tokens[1].Kind)
	}
	if tokens[1].Len() != 2 {
		t.Errorf("CRLF should be one two-byte token, len = %d", tokens[1].Len())
	}

	// A bare carriage return is not a newline.
	bare := Tokenize([]byte("a\rb"))
	if bare[1].Kind != source.TokOther {
		t.Errorf("bare CR kind = %v, want other", bare[1].Kind)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x 42 y", "42"},
		{"x 3.14 y", "3.14"},
		{"x 0xFF y", "0xFF"},
		{"x 1e10 y", "1e10"},
	}

	for _, tt := range tests {
		content := []byte(tt.input)
		tokens := Tokenize(content)

		var found bool
		for _, tok := range tokens {
			if tok.Kind == source.TokNumber {
				found = true
				if got := string(tok.Text(content)); got != tt.want {
					t.Errorf("%q: number token = %q, want %q", tt.input, got, tt.want)
				}
				break
			}
		}
		if !found {
			t.Errorf("%q: no number token", tt.input)
		}
	}
}

func TestTokenizeKeywords(t *testing.T) {
	content := []byte("return foo")
	tokens := Tokenize(content)

	if tokens[0].Kind != source.TokKeyword {
		t.Errorf("'return' kind = %v, want keyword", tokens[0].Kind)
	}
	if tokens[2].Kind != source.TokIdent {
		t.Errorf("'foo' kind = %v, want ident", tokens[2].Kind)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := Tokenize(nil); len(tokens) != 0 {
		t.Errorf("empty content should yield no tokens, got %d", len(tokens))
	}
}
