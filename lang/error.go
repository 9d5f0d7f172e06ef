package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values). Each represents one failure kind of
// a conversion run; context (name, operator, position) is attached with
// [Error.With] at the failure site.
var (
	ErrUnterminatedComment  = NewError("unterminated comment")
	ErrUndeclaredConstant   = NewError("undeclared constant")
	ErrRedeclaration        = NewError("constant redeclared")
	ErrInsufficientOperands = NewError("insufficient operands for operator")
	ErrMalformedExpression  = NewError("malformed expression")
	ErrOperandType          = NewError("operator not defined for operand types")
	ErrDivisionByZero       = NewError("division by zero")
	ErrInvalidNumber        = NewError("invalid number literal")
	ErrReadInput            = NewError("failed to read input")
	ErrMarshal              = NewError("failed to marshal document")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same base message.
// This lets errors.Is match the predefined sentinel values after context
// attributes have been attached with With or Wrap.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)

	return ok && te.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError reports a syntax error with its source location. When Source
// is set, the formatted message includes the offending line with a caret
// marking the column.
type ParseError struct {
	Line     int
	Col      int
	Msg      string   // Description of the failure
	Expected []string // Token kinds that would have been accepted
	Source   string   // The original source input
}

// NewParseError creates a ParseError at the given position.
func NewParseError(line, col int, msg string) *ParseError {
	return &ParseError{Line: line, Col: col, Msg: msg}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("syntax error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Col))
	buf.WriteString(": ")
	buf.WriteString(e.Msg)

	if snippet := e.snippet(); snippet != "" {
		buf.WriteString("\n")
		buf.WriteString(snippet)
	}

	if len(e.Expected) > 0 {
		buf.WriteString("\texpected: ")
		buf.WriteString(strings.Join(e.Expected, ", "))
	}

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", e.Msg),
		slog.Int("line", e.Line),
		slog.Int("column", e.Col),
	}

	if len(e.Expected) > 0 {
		attrs = append(attrs, slog.Any("expected", e.Expected))
	}

	return slog.GroupValue(attrs...)
}

// snippet renders the offending source line with a caret marking the
// column, or "" when the source or position is unavailable.
func (e *ParseError) snippet() string {
	if e.Source == "" || e.Line <= 0 {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if e.Line > len(lines) {
		return ""
	}

	line := lines[e.Line-1]

	var src strings.Builder

	// Print the line with line number
	src.WriteString("  ")
	src.WriteString(strconv.Itoa(e.Line))
	src.WriteString(" | ")
	src.WriteString(line)
	src.WriteRune('\n')

	// Print marker pointing to the column
	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	padding := strings.Repeat(" ", len(strconv.Itoa(e.Line))+5)

	if e.Col > 0 {
		padding += strings.Repeat(" ", e.Col-1)
	}

	src.WriteString(padding + "^\n")

	return src.String()
}
