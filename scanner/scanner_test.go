package scanner

import (
	"testing"

	"loxvm/token"
)

func scanAll(src string) []token.Token {
	s := New([]byte(src))
	var tokens []token.Token
	for {
		tok := s.ScanToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			return tokens
		}
	}
}

func TestScanTokenKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"empty", "", []token.Kind{token.Eof}},
		{"parens", "()", []token.Kind{token.LeftParen, token.RightParen, token.Eof}},
		{"arith", "1 + 2 * 3", []token.Kind{token.Number, token.Plus, token.Number, token.Star, token.Number, token.Eof}},
		{"two-char operators", "!= == <= >= < > = !", []token.Kind{
			token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
			token.Less, token.Greater, token.Equal, token.Bang, token.Eof,
		}},
		{"keywords", "nil true false and or print return", []token.Kind{
			token.Nil, token.True, token.False, token.And, token.Or, token.Print, token.Return, token.Eof,
		}},
		{"identifier not keyword", "falsey", []token.Kind{token.Identifier, token.Eof}},
		{"trailing dot is not part of number", "1.", []token.Kind{token.Number, token.Dot, token.Eof}},
		{"float", "3.14", []token.Kind{token.Number, token.Eof}},
		{"line comment", "1 // ignored\n2", []token.Kind{token.Number, token.Number, token.Eof}},
		{"string literal", `"hello"`, []token.Kind{token.String, token.Eof}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanAll(tt.src)
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.want), tokens)
			}
			for i, kind := range tt.want {
				if tokens[i].Kind != kind {
					t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, kind)
				}
			}
		})
	}
}

func TestScanTokenUnterminatedString(t *testing.T) {
	tokens := scanAll(`"unterminated`)
	if tokens[0].Kind != token.Error {
		t.Fatalf("got %s, want Error", tokens[0].Kind)
	}
	if string(tokens[0].Lexeme) != "Unterminated string." {
		t.Errorf("got lexeme %q", tokens[0].Lexeme)
	}
}

func TestScanTokenUnexpectedCharacter(t *testing.T) {
	tokens := scanAll("@")
	if tokens[0].Kind != token.Error {
		t.Fatalf("got %s, want Error", tokens[0].Kind)
	}
	if string(tokens[0].Lexeme) != "Unexpected character." {
		t.Errorf("got lexeme %q", tokens[0].Lexeme)
	}
}

func TestScanTokenLineTracking(t *testing.T) {
	tokens := scanAll("1\n2\n3")
	want := []int{1, 2, 3, 3}
	for i, line := range want {
		if tokens[i].Line != line {
			t.Errorf("token %d: got line %d, want %d", i, tokens[i].Line, line)
		}
	}
}

func TestScanTokenEofIsSticky(t *testing.T) {
	s := New([]byte("1"))
	s.ScanToken()
	for i := 0; i < 3; i++ {
		if tok := s.ScanToken(); tok.Kind != token.Eof {
			t.Fatalf("call %d: got %s, want Eof", i, tok.Kind)
		}
	}
}

func TestScanTokenStringWithEmbeddedNewline(t *testing.T) {
	tokens := scanAll("\"a\nb\"\n1")
	if tokens[0].Kind != token.String {
		t.Fatalf("got %s, want String", tokens[0].Kind)
	}
	if tokens[1].Line != 3 {
		t.Errorf("number after multi-line string: got line %d, want 3", tokens[1].Line)
	}
}

// Round-trip property: concatenating every non-whitespace, non-comment
// lexeme reproduces the source with whitespace/comments removed.
func TestScanTokenLexemeRoundTrip(t *testing.T) {
	src := "1 + 2 // trailing comment\n* (3)"
	tokens := scanAll(src)
	var got []byte
	for _, tok := range tokens {
		if tok.Kind == token.Eof {
			continue
		}
		got = append(got, tok.Lexeme...)
	}
	want := "1+2*(3)"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
