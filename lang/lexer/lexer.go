// Package lexer implements the scanner for the deft language.
//
// The scanner operates on a rune slice and produces position-carrying
// tokens one at a time. Comment stripping is not handled here; callers
// are expected to blank /# ... #/ spans before scanning (see lang).
package lexer

import (
	"strconv"

	"github.com/ardnew/deft/lang/token"
)

// Error describes a lexical error at a source position.
type Error struct {
	Line int
	Col  int
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "line " + strconv.Itoa(e.Line) +
		", column " + strconv.Itoa(e.Col) + ": " + e.Msg
}

// Lexer scans a deft source text into tokens.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

// New creates a Lexer over the given source runes.
func New(src []rune) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// errorf constructs an *Error at the given position.
func errorf(line, col int, msg string) *Error {
	return &Error{Line: line, Col: col, Msg: msg}
}

// peek returns the rune at offset n from the current position, or -1 when
// past the end of input.
func (l *Lexer) peek(n int) rune {
	if l.pos+n >= len(l.src) {
		return -1
	}

	return l.src[l.pos+n]
}

// advance consumes one rune, updating line and column counters.
func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// startsNumber reports whether the input at the current position begins a
// numeric literal. A leading '-' belongs to a number only when immediately
// followed by a digit or by '.' and a digit; otherwise it is the
// subtraction operator.
func (l *Lexer) startsNumber() bool {
	r := l.peek(0)

	switch {
	case isDigit(r):
		return true

	case r == '.':
		return isDigit(l.peek(1))

	case r == '-':
		next := l.peek(1)

		return isDigit(next) || (next == '.' && isDigit(l.peek(2)))

	default:
		return false
	}
}

// Next returns the next token in the stream. At end of input it returns an
// EOF token; the EOF token is returned indefinitely thereafter.
func (l *Lexer) Next() (token.Token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.advance()
	}

	line, col := l.line, l.col

	if l.pos >= len(l.src) {
		return token.Token{Kind: token.EOF, Line: line, Col: col}, nil
	}

	switch r := l.peek(0); {
	case r == '(':
		l.advance()

		return token.Token{Kind: token.LParen, Lit: "(", Line: line, Col: col}, nil

	case r == ')':
		l.advance()

		return token.Token{Kind: token.RParen, Lit: ")", Line: line, Col: col}, nil

	case r == '{':
		l.advance()

		return token.Token{Kind: token.LBrace, Lit: "{", Line: line, Col: col}, nil

	case r == '}':
		l.advance()

		return token.Token{Kind: token.RBrace, Lit: "}", Line: line, Col: col}, nil

	case r == '=':
		l.advance()

		return token.Token{Kind: token.Assign, Lit: "=", Line: line, Col: col}, nil

	case r == ']':
		l.advance()

		return token.Token{Kind: token.ExprClose, Lit: "]", Line: line, Col: col}, nil

	case r == '$':
		if l.peek(1) != '[' {
			return token.Token{}, errorf(line, col, `expected "[" after "$"`)
		}

		l.advance()
		l.advance()

		return token.Token{Kind: token.ExprOpen, Lit: "$[", Line: line, Col: col}, nil

	case r == '+' || r == '*':
		l.advance()

		return token.Token{
			Kind: token.Operator, Lit: string(r), Line: line, Col: col,
		}, nil

	case r == '-' && !l.startsNumber():
		l.advance()

		return token.Token{Kind: token.Operator, Lit: "-", Line: line, Col: col}, nil

	case l.startsNumber():
		return l.scanNumber(line, col)

	case isNameRune(r):
		return l.scanName(line, col)

	default:
		return token.Token{}, errorf(line, col, "unexpected character "+strconv.QuoteRune(r))
	}
}

// scanNumber scans a numeric literal:
// optional "-", digits, optional "." digits, optional exponent.
// The accepted integer/fraction shapes are digits, digits ".", digits "."
// digits, and "." digits.
func (l *Lexer) scanNumber(line, col int) (token.Token, error) {
	start := l.pos

	if l.peek(0) == '-' {
		l.advance()
	}

	for isDigit(l.peek(0)) {
		l.advance()
	}

	if l.peek(0) == '.' {
		l.advance()

		for isDigit(l.peek(0)) {
			l.advance()
		}
	}

	if r := l.peek(0); r == 'e' || r == 'E' {
		next := l.peek(1)
		digitAt := 1

		if next == '+' || next == '-' {
			digitAt = 2
		}

		if !isDigit(l.peek(digitAt)) {
			return token.Token{}, errorf(
				l.line, l.col, "exponent has no digits",
			)
		}

		l.advance() // e or E

		if digitAt == 2 {
			l.advance() // sign
		}

		for isDigit(l.peek(0)) {
			l.advance()
		}
	}

	return token.Token{
		Kind: token.Number,
		Lit:  string(l.src[start:l.pos]),
		Line: line,
		Col:  col,
	}, nil
}

// scanName scans an identifier and classifies reserved words. The exact
// sequence "q(" begins a string literal; a bare "q" is an ordinary name.
func (l *Lexer) scanName(line, col int) (token.Token, error) {
	start := l.pos

	for isNameRune(l.peek(0)) {
		l.advance()
	}

	name := string(l.src[start:l.pos])

	switch name {
	case "q":
		if l.peek(0) == '(' {
			return l.scanString(line, col)
		}

	case "def":
		return token.Token{Kind: token.Def, Lit: name, Line: line, Col: col}, nil

	case "max", "mod":
		return token.Token{Kind: token.Operator, Lit: name, Line: line, Col: col}, nil
	}

	return token.Token{Kind: token.Name, Lit: name, Line: line, Col: col}, nil
}

// scanString scans the remainder of a q(...) literal. The opening "q" has
// already been consumed and the current rune is "(". Content is every rune
// up to the first ")"; there are no escape sequences.
func (l *Lexer) scanString(line, col int) (token.Token, error) {
	l.advance() // (

	start := l.pos

	for {
		r := l.peek(0)

		if r == -1 {
			return token.Token{}, errorf(line, col, "unterminated string literal")
		}

		if r == ')' {
			break
		}

		l.advance()
	}

	content := string(l.src[start:l.pos])
	l.advance() // )

	return token.Token{
		Kind: token.String,
		Lit:  content,
		Line: line,
		Col:  col,
	}, nil
}
