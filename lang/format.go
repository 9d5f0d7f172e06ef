package lang

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Format writes the parsed document back out in canonical native syntax.
// With indent > 0, mapping entries are placed one per line at the given
// indent width; with indent == 0, everything is emitted on one line.
func (ast *AST) Format(_ context.Context, w io.Writer, indent int) error {
	for i, form := range ast.Forms {
		if i > 0 {
			sep := " "
			if indent > 0 {
				sep = "\n\n"
			}

			if _, err := fmt.Fprint(w, sep); err != nil {
				return err
			}
		}

		err := formatForm(w, form, indent)
		if err != nil {
			return err
		}
	}

	// Final newline
	_, err := fmt.Fprintln(w)

	return err
}

// formatForm formats one top-level form.
func formatForm(w io.Writer, form *Form, indent int) error {
	if form.Kind == FormConst {
		if _, err := fmt.Fprintf(w, "(def %s ", form.Name.Lit); err != nil {
			return err
		}

		err := formatNode(w, form.Value, indent, 0)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(w, ")")

		return err
	}

	return formatNode(w, form.Value, indent, 0)
}

// formatNode formats a value node at the given nesting depth.
func formatNode(w io.Writer, n *Node, indent, depth int) error {
	switch n.Type {
	case TypeNumber, TypeName, TypeOperator:
		_, err := fmt.Fprint(w, n.Token.Lit)

		return err

	case TypeString:
		_, err := fmt.Fprintf(w, "q(%s)", n.Token.Lit)

		return err

	case TypeExpr:
		return formatExpr(w, n, indent, depth)

	case TypeMapping:
		return formatMapping(w, n, indent, depth)

	default:
		return ErrMalformedExpression.Wrap(
			fmt.Errorf("cannot format node type %s", n.Type),
		)
	}
}

// formatExpr formats a postfix expression with items space-separated.
func formatExpr(w io.Writer, n *Node, indent, depth int) error {
	if _, err := fmt.Fprint(w, "$["); err != nil {
		return err
	}

	for i, item := range n.Items {
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}

		// Mappings nested inside an expression stay inline
		err := formatNode(w, item, 0, depth)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "]")

	return err
}

// formatMapping formats a mapping literal, one entry per line when an
// indent width is configured.
func formatMapping(w io.Writer, n *Node, indent, depth int) error {
	if len(n.Entries) == 0 {
		_, err := fmt.Fprint(w, "{}")

		return err
	}

	if indent == 0 {
		if _, err := fmt.Fprint(w, "{"); err != nil {
			return err
		}

		for _, entry := range n.Entries {
			if _, err := fmt.Fprintf(w, " %s = ", entry.Name.Lit); err != nil {
				return err
			}

			err := formatNode(w, entry.Value, 0, depth)
			if err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, " }")

		return err
	}

	if _, err := fmt.Fprintln(w, "{"); err != nil {
		return err
	}

	pad := strings.Repeat(" ", indent*(depth+1))

	for _, entry := range n.Entries {
		if _, err := fmt.Fprintf(w, "%s%s = ", pad, entry.Name.Lit); err != nil {
			return err
		}

		err := formatNode(w, entry.Value, indent, depth+1)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s}", strings.Repeat(" ", indent*depth))

	return err
}
