package lang

import (
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/deft/lang/token"
)

// ConstTable is the ordered, write-once table of named constants for one
// conversion run. Names are added in source order and never removed; the
// table is discarded when the run completes.
type ConstTable struct {
	names     []string
	vals      map[string]Value
	redeclare bool
}

// NewConstTable creates an empty table. When redeclare is true, a later
// declaration of an existing name silently overwrites the earlier one
// instead of failing.
func NewConstTable(redeclare bool) *ConstTable {
	return &ConstTable{
		vals:      make(map[string]Value),
		redeclare: redeclare,
	}
}

// Len returns the number of declared constants.
func (t *ConstTable) Len() int {
	return len(t.names)
}

// Names returns the declared names in declaration order.
func (t *ConstTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Declare binds name to v. Redeclaring an existing name fails with
// ErrRedeclaration unless overwriting was enabled at construction.
func (t *ConstTable) Declare(name *token.Token, v Value) error {
	if _, exists := t.vals[name.Lit]; exists {
		if !t.redeclare {
			return ErrRedeclaration.With(
				slog.String("name", name.Lit),
				slog.String("position", name.Pos()),
			)
		}

		t.vals[name.Lit] = v

		return nil
	}

	t.names = append(t.names, name.Lit)
	t.vals[name.Lit] = v

	return nil
}

// Resolve returns the Value declared under name. An unknown name fails
// with ErrUndeclaredConstant; when a declared name is a close match, the
// error carries it as a suggestion.
func (t *ConstTable) Resolve(name *token.Token) (Value, error) {
	v, ok := t.vals[name.Lit]
	if !ok {
		err := ErrUndeclaredConstant.With(
			slog.String("name", name.Lit),
			slog.String("position", name.Pos()),
		)

		if match := t.closest(name.Lit); match != "" {
			err = err.With(slog.String("did_you_mean", match))
		}

		return Value{}, err
	}

	return v, nil
}

// closest returns the declared name most similar to name, or "" when no
// declared name is a plausible match.
func (t *ConstTable) closest(name string) string {
	matches := fuzzy.Find(name, t.names)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}
