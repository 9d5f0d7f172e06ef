package lexer

import (
	"strings"
	"testing"

	"github.com/ardnew/deft/lang/token"
)

// scanAll collects every token up to EOF, failing the test on any
// lexical error.
func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()

	l := New([]rune(input))

	var toks []token.Token

	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("lex error on %q: %v", input, err)
		}

		if tok.Kind == token.EOF {
			return toks
		}

		toks = append(toks, tok)
	}
}

func TestLexer_Punctuation(t *testing.T) {
	toks := scanAll(t, "( ) { } = $[ ]")

	want := []token.Kind{
		token.LParen, token.RParen,
		token.LBrace, token.RBrace,
		token.Assign,
		token.ExprOpen, token.ExprClose,
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Errorf("token[%d] = %s, want %s", i, toks[i].Kind, kind)
		}
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "integer",
			input: "42",
			want:  []string{"42"},
		},
		{
			name:  "negative integer",
			input: "-7",
			want:  []string{"-7"},
		},
		{
			name:  "fraction",
			input: "3.14",
			want:  []string{"3.14"},
		},
		{
			name:  "trailing dot",
			input: "3.",
			want:  []string{"3."},
		},
		{
			name:  "leading dot",
			input: ".5",
			want:  []string{".5"},
		},
		{
			name:  "negative leading dot",
			input: "-.5",
			want:  []string{"-.5"},
		},
		{
			name:  "exponent",
			input: "1e3",
			want:  []string{"1e3"},
		},
		{
			name:  "signed exponent",
			input: "2.5E-10",
			want:  []string{"2.5E-10"},
		},
		{
			name:  "multiple numbers",
			input: "1 2 3",
			want:  []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.input)

			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(toks), len(tt.want))
			}

			for i, want := range tt.want {
				if toks[i].Kind != token.Number {
					t.Errorf("token[%d] kind = %s, want number", i, toks[i].Kind)
				}

				if toks[i].Lit != want {
					t.Errorf("token[%d] = %q, want %q", i, toks[i].Lit, want)
				}
			}
		})
	}
}

// TestLexer_MinusDisambiguation verifies that "-" begins a number only when
// immediately followed by a digit (or dot and digit), and is the subtraction
// operator otherwise.
func TestLexer_MinusDisambiguation(t *testing.T) {
	toks := scanAll(t, "-5 - 5 -x")

	want := []struct {
		kind token.Kind
		lit  string
	}{
		{token.Number, "-5"},
		{token.Operator, "-"},
		{token.Number, "5"},
		{token.Operator, "-"},
		{token.Name, "x"},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Lit != w.lit {
			t.Errorf("token[%d] = %s %q, want %s %q",
				i, toks[i].Kind, toks[i].Lit, w.kind, w.lit)
		}
	}
}

func TestLexer_ExponentWithoutDigits(t *testing.T) {
	l := New([]rune("1e"))

	_, err := l.Next()
	if err == nil {
		t.Fatal("expected error for exponent without digits")
	}

	if !strings.Contains(err.Error(), "exponent") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLexer_ReservedWords(t *testing.T) {
	toks := scanAll(t, "def max mod definition maximum")

	want := []struct {
		kind token.Kind
		lit  string
	}{
		{token.Def, "def"},
		{token.Operator, "max"},
		{token.Operator, "mod"},
		{token.Name, "definition"},
		{token.Name, "maximum"},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Lit != w.lit {
			t.Errorf("token[%d] = %s %q, want %s %q",
				i, toks[i].Kind, toks[i].Lit, w.kind, w.lit)
		}
	}
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple",
			input: "q(hello)",
			want:  "hello",
		},
		{
			name:  "empty",
			input: "q()",
			want:  "",
		},
		{
			name:  "spaces and punctuation",
			input: "q(hello, world! {=})",
			want:  "hello, world! {=}",
		},
		{
			name:  "newline in content",
			input: "q(a\nb)",
			want:  "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.input)

			if len(toks) != 1 {
				t.Fatalf("got %d tokens, want 1", len(toks))
			}

			if toks[0].Kind != token.String {
				t.Fatalf("kind = %s, want string", toks[0].Kind)
			}

			if toks[0].Lit != tt.want {
				t.Errorf("content = %q, want %q", toks[0].Lit, tt.want)
			}
		})
	}
}

// TestLexer_BareQ verifies that "q" opens a string only when immediately
// followed by "(". With intervening space it is an ordinary name.
func TestLexer_BareQ(t *testing.T) {
	toks := scanAll(t, "q (x)")

	want := []token.Kind{token.Name, token.LParen, token.Name, token.RParen}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Errorf("token[%d] = %s, want %s", i, toks[i].Kind, kind)
		}
	}

	if toks[0].Lit != "q" {
		t.Errorf("token[0] = %q, want %q", toks[0].Lit, "q")
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New([]rune("q(never closed"))

	_, err := l.Next()
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}

	if !strings.Contains(err.Error(), "unterminated string") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLexer_DollarWithoutBracket(t *testing.T) {
	l := New([]rune("$x"))

	_, err := l.Next()
	if err == nil {
		t.Fatal("expected error for $ without [")
	}
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	l := New([]rune("@"))

	_, err := l.Next()
	if err == nil {
		t.Fatal("expected error for unexpected character")
	}

	le, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}

	if le.Line != 1 || le.Col != 1 {
		t.Errorf("position = %d:%d, want 1:1", le.Line, le.Col)
	}
}

func TestLexer_Positions(t *testing.T) {
	toks := scanAll(t, "{\n  a = 1\n}")

	want := []struct {
		line int
		col  int
	}{
		{1, 1}, // {
		{2, 3}, // a
		{2, 5}, // =
		{2, 7}, // 1
		{3, 1}, // }
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, w := range want {
		if toks[i].Line != w.line || toks[i].Col != w.col {
			t.Errorf("token[%d] at %d:%d, want %d:%d",
				i, toks[i].Line, toks[i].Col, w.line, w.col)
		}
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	l := New([]rune(""))

	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}

		if tok.Kind != token.EOF {
			t.Fatalf("call %d: kind = %s, want EOF", i, tok.Kind)
		}
	}
}
