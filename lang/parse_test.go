package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_ConstDecl(t *testing.T) {
	ast, err := ParseString(t.Context(), "(def port 8080)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(ast.Forms) != 1 {
		t.Fatalf("got %d forms, want 1", len(ast.Forms))
	}

	form := ast.Forms[0]
	if form.Kind != FormConst {
		t.Fatalf("form kind = %s, want Const", form.Kind)
	}

	if form.Name.Lit != "port" {
		t.Errorf("name = %q, want %q", form.Name.Lit, "port")
	}

	if form.Value.Type != TypeNumber || form.Value.Token.Lit != "8080" {
		t.Errorf("value = %v %q", form.Value.Type, form.Value.Token.Lit)
	}
}

func TestParse_Mapping(t *testing.T) {
	ast, err := ParseString(t.Context(), "{ a = 1 b = q(two) c = {} }")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(ast.Forms) != 1 {
		t.Fatalf("got %d forms, want 1", len(ast.Forms))
	}

	form := ast.Forms[0]
	if form.Kind != FormMapping {
		t.Fatalf("form kind = %s, want Mapping", form.Kind)
	}

	entries := form.Value.Entries
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	want := []struct {
		name string
		typ  Type
	}{
		{"a", TypeNumber},
		{"b", TypeString},
		{"c", TypeMapping},
	}

	for i, w := range want {
		if entries[i].Name.Lit != w.name {
			t.Errorf("entry[%d] name = %q, want %q", i, entries[i].Name.Lit, w.name)
		}

		if entries[i].Value.Type != w.typ {
			t.Errorf("entry[%d] type = %s, want %s", i, entries[i].Value.Type, w.typ)
		}
	}
}

// TestParse_ExprItemsVerbatim verifies that expression contents are kept in
// token order with no structure imposed at parse time.
func TestParse_ExprItemsVerbatim(t *testing.T) {
	ast, err := ParseString(t.Context(), "{ r = $[a 2 + q(s) max] }")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	expr := ast.Forms[0].Value.Entries[0].Value
	if expr.Type != TypeExpr {
		t.Fatalf("value type = %s, want Expr", expr.Type)
	}

	want := []Type{TypeName, TypeNumber, TypeOperator, TypeString, TypeOperator}

	if len(expr.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(expr.Items), len(want))
	}

	for i, typ := range want {
		if expr.Items[i].Type != typ {
			t.Errorf("item[%d] = %s, want %s", i, expr.Items[i].Type, typ)
		}
	}
}

func TestParse_MultipleForms(t *testing.T) {
	ast, err := ParseString(t.Context(), "(def a 1) { x = a } (def b 2) { y = b }")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := []FormKind{FormConst, FormMapping, FormConst, FormMapping}

	if len(ast.Forms) != len(want) {
		t.Fatalf("got %d forms, want %d", len(ast.Forms), len(want))
	}

	for i, kind := range want {
		if ast.Forms[i].Kind != kind {
			t.Errorf("form[%d] = %s, want %s", i, ast.Forms[i].Kind, kind)
		}
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	ast, err := ParseString(t.Context(), "  \n\t ")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(ast.Forms) != 0 {
		t.Errorf("got %d forms, want 0", len(ast.Forms))
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "missing value after assign",
			input: "{ a = }",
		},
		{
			name:  "number as constant name",
			input: "(def 5 1)",
		},
		{
			name:  "missing def keyword",
			input: "(port 8080)",
		},
		{
			name:  "unclosed mapping",
			input: "{ a = 1",
		},
		{
			name:  "unclosed expression",
			input: "{ a = $[1 2 +",
		},
		{
			name:  "unclosed const decl",
			input: "(def a 1",
		},
		{
			name:  "stray closing brace",
			input: "}",
		},
		{
			name:  "assign outside mapping",
			input: "a = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(t.Context(), tt.input)
			if err == nil {
				t.Fatalf("expected syntax error for %q", tt.input)
			}

			pe := &ParseError{}
			if !errors.As(err, &pe) {
				t.Errorf("error type = %T, want *ParseError", err)
			}
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := ParseString(t.Context(), "{ a = 1 }\n{ b = }")
	if err == nil {
		t.Fatal("expected syntax error")
	}

	pe := &ParseError{}
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}

	if pe.Line != 2 || pe.Col != 7 {
		t.Errorf("position = %d:%d, want 2:7", pe.Line, pe.Col)
	}

	if len(pe.Expected) == 0 {
		t.Error("expected token kinds should be listed")
	}
}

// TestParse_ErrorSnippet verifies that the formatted message includes the
// offending line with a caret under the column.
func TestParse_ErrorSnippet(t *testing.T) {
	_, err := ParseString(t.Context(), "{ a = }")
	if err == nil {
		t.Fatal("expected syntax error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "{ a = }") {
		t.Errorf("message should contain source line:\n%s", msg)
	}

	if !strings.Contains(msg, "^") {
		t.Errorf("message should contain caret marker:\n%s", msg)
	}
}

func TestParse_UnterminatedCommentFails(t *testing.T) {
	_, err := ParseString(t.Context(), "{ a = 1 } /# dangling")
	if !errors.Is(err, ErrUnterminatedComment) {
		t.Fatalf("expected ErrUnterminatedComment, got %v", err)
	}
}

func TestParseReader(t *testing.T) {
	ast, err := ParseReader(t.Context(), strings.NewReader("{ a = 1 }"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(ast.Forms) != 1 {
		t.Errorf("got %d forms, want 1", len(ast.Forms))
	}
}
