package lang

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/ardnew/deft/lang/lexer"
	"github.com/ardnew/deft/lang/token"
)

// FuzzLexer tests the lexer with random inputs to find edge cases.
func FuzzLexer(f *testing.F) {
	// Seed corpus with known valid inputs
	f.Add("(def x 5)")
	f.Add("{ a = 1 }")
	f.Add("q(string content)")
	f.Add("$[1 2 +]")
	f.Add("-123.456e-10")
	f.Add("3.")
	f.Add(".5")
	f.Add("def max mod q")
	f.Add("q(")
	f.Add("$")
	f.Add("1e")

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		// Lexer should not panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("lexer panicked on input %q: %v", input, r)
			}
		}()

		l := lexer.New([]rune(input))

		for {
			tok, err := l.Next()
			if err != nil {
				return
			}

			if tok.Kind == token.EOF {
				return
			}

			// Positions are 1-based
			if tok.Line < 1 || tok.Col < 1 {
				t.Errorf("token %s has invalid position %d:%d",
					tok.Kind, tok.Line, tok.Col)
			}
		}
	})
}

// FuzzConvert tests the full pipeline with random inputs to find edge
// cases. Any input must either convert cleanly or fail with an error;
// panics are defects.
func FuzzConvert(f *testing.F) {
	// Seed corpus with known valid documents
	f.Add("(def X 5) { a = X }")
	f.Add("{ r = $[1 2 + 3 max] }")
	f.Add("{ s = $[q(foo) q(bar) +] }")
	f.Add("{ m = { n = { o = 1 } } }")
	f.Add("/# comment #/ { a = 1 }")
	f.Add("{ a = 1 } { a = 2 }")
	f.Add("(def a { b = $[1 2 mod] })")
	f.Add("{ v = $[1 0 mod] }")
	f.Add("{ a = }")
	f.Add("}{")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("convert panicked on input %q: %v", input, r)
			}
		}()

		v, err := ConvertString(t.Context(), input)
		if err != nil {
			return
		}

		// A successful conversion must yield an encodable document
		var buf bytes.Buffer

		if err := EncodeJSON(&buf, v, 0); err != nil {
			t.Errorf("document from %q failed to encode: %v", input, err)
		}
	})
}
