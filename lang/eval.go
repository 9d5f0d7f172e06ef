package lang

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ardnew/deft/lang/token"

	"github.com/ardnew/deft/log"
)

// Convert evaluates the document in a single forward pass: constant
// declarations populate the run's constant table in source order, and
// every top-level mapping literal is merged, in order, into the returned
// document Mapping. A document with no mapping literals yields an empty
// Mapping.
func (ast *AST) Convert(ctx context.Context) (Value, error) {
	cc := &convContext{
		consts: NewConstTable(ast.opts.redeclare),
		logger: ast.logger,
	}

	doc := NewMapping()

	for _, form := range ast.Forms {
		switch form.Kind {
		case FormConst:
			v, err := cc.evaluateNode(form.Value)
			if err != nil {
				return Value{}, err
			}

			err = cc.consts.Declare(form.Name, v)
			if err != nil {
				return Value{}, err
			}

			cc.logger.TraceContext(
				ctx,
				"declare constant",
				slog.String("name", form.Name.Lit),
				slog.String("kind", v.Kind.String()),
			)

		case FormMapping:
			v, err := cc.evaluateNode(form.Value)
			if err != nil {
				return Value{}, err
			}

			doc.Merge(v.Map)

			cc.logger.TraceContext(
				ctx,
				"merge mapping",
				slog.Int("entry_count", v.Map.Len()),
			)
		}
	}

	return MappingValue(doc), nil
}

// convContext holds the state owned by one conversion run.
type convContext struct {
	consts *ConstTable
	logger log.Logger
}

// evaluateNode recursively evaluates a parse-tree node to a Value.
func (cc *convContext) evaluateNode(n *Node) (Value, error) {
	switch n.Type {
	case TypeNumber:
		return evaluateNumber(n.Token)

	case TypeString:
		return StringValue(n.Token.Lit), nil

	case TypeName:
		return cc.consts.Resolve(n.Token)

	case TypeMapping:
		return cc.evaluateMapping(n)

	case TypeExpr:
		return cc.evaluateExpr(n)

	default:
		// TypeOperator nodes only occur inside expression item lists and
		// are consumed by evaluateExpr.
		return Value{}, ErrMalformedExpression.With(
			slog.String("node", n.Type.String()),
		)
	}
}

// evaluateNumber converts a numeric literal to an Int or Float Value.
// The lexical form decides: a "." or exponent marker forces Float.
func evaluateNumber(tok *token.Token) (Value, error) {
	s := tok.Lit

	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntValue(i), nil
		}
		// Out of int64 range: fall through to float
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, ErrInvalidNumber.Wrap(err).With(
			slog.String("value", s),
			slog.String("position", tok.Pos()),
		)
	}

	return FloatValue(f), nil
}

// evaluateMapping evaluates every entry of a mapping literal in source
// order. A duplicate name overwrites the earlier binding.
func (cc *convContext) evaluateMapping(n *Node) (Value, error) {
	m := NewMapping()

	for _, entry := range n.Entries {
		v, err := cc.evaluateNode(entry.Value)
		if err != nil {
			return Value{}, err
		}

		m.Set(entry.Name.Lit, v)
	}

	return MappingValue(m), nil
}

// evaluateExpr evaluates a postfix expression with a single explicit
// operand stack, strictly left to right. Operand items push their Value;
// an operator pops two values and pushes its result. A balanced
// expression leaves exactly one value on the stack.
func (cc *convContext) evaluateExpr(n *Node) (Value, error) {
	stack := make([]Value, 0, len(n.Items))

	for _, item := range n.Items {
		if item.Type == TypeOperator {
			if len(stack) < 2 {
				return Value{}, ErrInsufficientOperands.With(
					slog.String("operator", item.Token.Lit),
					slog.String("position", item.Token.Pos()),
					slog.Int("available", len(stack)),
				)
			}

			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := applyOperator(item.Token, a, b)
			if err != nil {
				return Value{}, err
			}

			stack = append(stack, v)

			continue
		}

		v, err := cc.evaluateNode(item)
		if err != nil {
			return Value{}, err
		}

		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return Value{}, ErrMalformedExpression.With(
			slog.String("position", n.Token.Pos()),
			slog.Int("stack_size", len(stack)),
		)
	}

	return stack[0], nil
}

// applyOperator applies op to operands a and b, where a was pushed
// before b.
func applyOperator(op *token.Token, a, b Value) (Value, error) {
	switch op.Lit {
	case "+":
		return applyAdd(op, a, b)

	case "-":
		err := requireNumbers(op, a, b)
		if err != nil {
			return Value{}, err
		}

		if a.Kind == KindInt && b.Kind == KindInt {
			return IntValue(a.Int - b.Int), nil
		}

		return FloatValue(a.AsFloat() - b.AsFloat()), nil

	case "*":
		err := requireNumbers(op, a, b)
		if err != nil {
			return Value{}, err
		}

		if a.Kind == KindInt && b.Kind == KindInt {
			return IntValue(a.Int * b.Int), nil
		}

		return FloatValue(a.AsFloat() * b.AsFloat()), nil

	case "max":
		return applyMax(op, a, b)

	case "mod":
		return applyMod(op, a, b)

	default:
		return Value{}, ErrMalformedExpression.With(
			slog.String("operator", op.Lit),
			slog.String("position", op.Pos()),
		)
	}
}

// applyAdd implements "+": string concatenation when either operand is a
// string (numbers are stringified canonically first), numeric addition
// otherwise.
func applyAdd(op *token.Token, a, b Value) (Value, error) {
	if a.Kind == KindString || b.Kind == KindString {
		if a.Kind == KindMapping || b.Kind == KindMapping {
			return Value{}, operandTypeError(op, a, b)
		}

		return StringValue(a.Text() + b.Text()), nil
	}

	err := requireNumbers(op, a, b)
	if err != nil {
		return Value{}, err
	}

	if a.Kind == KindInt && b.Kind == KindInt {
		return IntValue(a.Int + b.Int), nil
	}

	return FloatValue(a.AsFloat() + b.AsFloat()), nil
}

// applyMax implements "max": numeric comparison for two numbers,
// lexicographic for two strings. On equality the earlier operand wins.
func applyMax(op *token.Token, a, b Value) (Value, error) {
	switch {
	case a.IsNumber() && b.IsNumber():
		if b.AsFloat() > a.AsFloat() {
			return b, nil
		}

		return a, nil

	case a.Kind == KindString && b.Kind == KindString:
		if b.Str > a.Str {
			return b, nil
		}

		return a, nil

	default:
		return Value{}, operandTypeError(op, a, b)
	}
}

// applyMod implements "mod": floored remainder, the sign following the
// divisor. A zero divisor is an error.
func applyMod(op *token.Token, a, b Value) (Value, error) {
	err := requireNumbers(op, a, b)
	if err != nil {
		return Value{}, err
	}

	if a.Kind == KindInt && b.Kind == KindInt {
		if b.Int == 0 {
			return Value{}, ErrDivisionByZero.With(
				slog.String("operator", op.Lit),
				slog.String("position", op.Pos()),
			)
		}

		r := a.Int % b.Int
		if r != 0 && (r < 0) != (b.Int < 0) {
			r += b.Int
		}

		return IntValue(r), nil
	}

	bf := b.AsFloat()
	if bf == 0 {
		return Value{}, ErrDivisionByZero.With(
			slog.String("operator", op.Lit),
			slog.String("position", op.Pos()),
		)
	}

	r := math.Mod(a.AsFloat(), bf)
	if r != 0 && (r < 0) != (bf < 0) {
		r += bf
	}

	return FloatValue(r), nil
}

// requireNumbers fails unless both operands are numbers.
func requireNumbers(op *token.Token, a, b Value) error {
	if a.IsNumber() && b.IsNumber() {
		return nil
	}

	return operandTypeError(op, a, b)
}

// operandTypeError constructs an ErrOperandType carrying the operator
// and both operand kinds.
func operandTypeError(op *token.Token, a, b Value) *Error {
	return ErrOperandType.With(
		slog.String("operator", op.Lit),
		slog.String("position", op.Pos()),
		slog.String("left", a.Kind.String()),
		slog.String("right", b.Kind.String()),
	)
}
