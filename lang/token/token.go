// Package token defines the lexical tokens of the deft language.
package token

import "strconv"

// Kind identifies the lexical class of a token.
type Kind int

const (
	// EOF marks the end of the token stream.
	EOF Kind = iota

	// LParen is the "(" punctuator opening a constant declaration.
	LParen

	// RParen is the ")" punctuator closing a constant declaration.
	RParen

	// LBrace is the "{" punctuator opening a mapping literal.
	LBrace

	// RBrace is the "}" punctuator closing a mapping literal.
	RBrace

	// Assign is the "=" punctuator binding a mapping entry.
	Assign

	// ExprOpen is the "$[" punctuator opening a postfix expression.
	ExprOpen

	// ExprClose is the "]" punctuator closing a postfix expression.
	ExprClose

	// Def is the reserved word "def".
	Def

	// Name is an identifier: one or more ASCII letters or underscores.
	Name

	// Number is a numeric literal. Lit carries the exact source spelling so
	// the evaluator can distinguish integer from floating-point forms.
	Number

	// String is a q(...) string literal. Lit carries the content between the
	// parentheses, without the delimiters.
	String

	// Operator is one of "+", "-", "*", "max", "mod".
	Operator
)

// String returns a human-readable name for the token kind, suitable for
// diagnostics.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case LParen:
		return `"("`
	case RParen:
		return `")"`
	case LBrace:
		return `"{"`
	case RBrace:
		return `"}"`
	case Assign:
		return `"="`
	case ExprOpen:
		return `"$["`
	case ExprClose:
		return `"]"`
	case Def:
		return `"def"`
	case Name:
		return "name"
	case Number:
		return "number"
	case String:
		return "string"
	case Operator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is a single lexical token with its source position.
// Line and Col are 1-based.
type Token struct {
	Kind Kind
	Lit  string
	Line int
	Col  int
}

// String returns the token's literal if it has one, or the kind name.
func (t Token) String() string {
	switch t.Kind {
	case Name, Number, Operator:
		return t.Lit
	case String:
		return "q(" + t.Lit + ")"
	default:
		return t.Kind.String()
	}
}

// Pos returns the token's position formatted as "line:col".
func (t Token) Pos() string {
	return strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Col)
}
