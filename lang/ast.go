package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ardnew/deft/lang/lexer"
	"github.com/ardnew/deft/lang/token"
	"github.com/ardnew/deft/log"
)

// AST is the parse tree for one deft document: the top-level sequence of
// constant declarations and mapping literals in source order.
type AST struct {
	Forms  []*Form
	opts   options
	logger log.Logger
}

// Form is one top-level item of a document.
type Form struct {
	Kind FormKind

	// Name is the declared constant's identifier (FormConst only).
	Name *token.Token

	// Value is the declared value (FormConst) or the mapping literal
	// (FormMapping, always a TypeMapping node).
	Value *Node
}

// FormKind indicates the kind of a top-level form.
type FormKind int

const (
	// FormConst is a constant declaration: ( def NAME value ).
	FormConst FormKind = iota

	// FormMapping is a top-level mapping literal: { ... }.
	FormMapping
)

// String returns a string representation of the form kind.
func (fk FormKind) String() string {
	switch fk {
	case FormConst:
		return "Const"

	case FormMapping:
		return "Mapping"

	default:
		return "Unknown"
	}
}

// Node represents any value expression in the language.
type Node struct {
	Type Type

	// Exactly one of these will be set based on Type
	Token   *token.Token // For literals, names, and operators
	Entries []*Entry     // For mappings
	Items   []*Node      // For expressions (operands and operators)
}

// Entry is a single NAME = value binding inside a mapping literal.
type Entry struct {
	Name  *token.Token
	Value *Node
}

// Type indicates the type of a parse-tree node.
type Type int

const (
	// TypeNumber represents a numeric literal.
	TypeNumber Type = iota

	// TypeString represents a q(...) string literal.
	TypeString

	// TypeName represents a constant-name reference.
	TypeName

	// TypeMapping represents a mapping literal.
	TypeMapping

	// TypeExpr represents a $[ ... ] postfix expression.
	TypeExpr

	// TypeOperator represents an operator inside an expression.
	TypeOperator
)

// String returns a string representation of the node type.
func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "Number"

	case TypeString:
		return "String"

	case TypeName:
		return "Name"

	case TypeMapping:
		return "Mapping"

	case TypeExpr:
		return "Expr"

	case TypeOperator:
		return "Operator"

	default:
		return "Unknown"
	}
}

// options holds AST configuration.
type options struct {
	redeclare bool
}

// Option configures parsing or conversion behavior.
type Option func(*AST)

// WithRedeclare controls whether a constant may be declared more than
// once. The default is false: a second declaration of the same name
// fails with ErrRedeclaration. Passing true restores the legacy behavior
// where a later declaration silently overwrites the earlier one.
func WithRedeclare(allow bool) Option {
	return func(ast *AST) {
		ast.opts.redeclare = allow
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(ast *AST) {
		ast.logger = logger
	}
}

// applyOptions applies functional options to an AST.
func applyOptions(ast *AST, opts ...Option) {
	for _, opt := range opts {
		opt(ast)
	}
}

// ParseString parses a document and returns its parse tree. Comments are
// stripped before lexing. Syntax errors carry the offending position and
// a source snippet.
func ParseString(ctx context.Context, input string, opts ...Option) (*AST, error) {
	ast := &AST{}
	applyOptions(ast, opts...)

	ast.logger.TraceContext(
		ctx,
		"parse start",
		slog.Int("source_length", len(input)),
	)

	stripped, err := StripComments(input)
	if err != nil {
		return nil, err
	}

	err = ast.parse(ctx, lexer.New([]rune(stripped)))
	if err != nil {
		// Attach the source input for better error messages
		pe := &ParseError{}
		if errors.As(err, &pe) {
			pe.Source = stripped
		}

		return nil, err
	}

	ast.logger.TraceContext(
		ctx,
		"parse complete",
		slog.Int("form_count", len(ast.Forms)),
	)

	return ast, nil
}

// ParseReader reads all input from r and parses it as a document.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*AST, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(input), opts...)
}

// ConvertString parses and converts a document in one call, returning the
// merged document Mapping.
func ConvertString(ctx context.Context, input string, opts ...Option) (Value, error) {
	ast, err := ParseString(ctx, input, opts...)
	if err != nil {
		return Value{}, err
	}

	return ast.Convert(ctx)
}

// ConvertReader reads all input from r, then parses and converts it.
func ConvertReader(ctx context.Context, r io.Reader, opts ...Option) (Value, error) {
	ast, err := ParseReader(ctx, r, opts...)
	if err != nil {
		return Value{}, err
	}

	return ast.Convert(ctx)
}
