package lang

import (
	"iter"
	"strconv"
	"strings"
)

// Kind indicates the variant held by a Value.
type Kind int

const (
	// KindInt is a number written without a decimal point or exponent.
	KindInt Kind = iota

	// KindFloat is a number whose lexical form contains "." or an
	// exponent marker.
	KindFloat

	// KindString is UTF-8 text from a q(...) literal or concatenation.
	KindString

	// KindMapping is an ordered set of name → Value pairs.
	KindMapping
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"

	case KindFloat:
		return "Float"

	case KindString:
		return "String"

	case KindMapping:
		return "Mapping"

	default:
		return "Unknown"
	}
}

// Value is the closed tagged union of every value the language can
// produce. Exactly one payload field is meaningful for a given Kind.
// Values are never mutated after assembly; Mapping contents are filled
// during evaluation and read-only afterwards.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
	Map   *Mapping
}

// IntValue creates an integer Value.
func IntValue(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// FloatValue creates a floating-point Value.
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// StringValue creates a string Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// MappingValue creates a mapping Value.
func MappingValue(m *Mapping) Value {
	return Value{Kind: KindMapping, Map: m}
}

// IsNumber reports whether the value is an integer or floating-point
// number.
func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// AsFloat returns the numeric payload widened to float64.
// It is only meaningful for number values.
func (v Value) AsFloat() float64 {
	if v.Kind == KindInt {
		return float64(v.Int)
	}

	return v.Float
}

// Text returns the canonical textual form of the value: integers without
// a decimal point, floats in shortest round-trippable decimal form, and
// strings verbatim. Mappings render in native syntax for diagnostics.
func (v Value) Text() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)

	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)

	case KindString:
		return v.Str

	case KindMapping:
		var buf strings.Builder

		buf.WriteString("{")

		for name, val := range v.Map.All() {
			buf.WriteString(" ")
			buf.WriteString(name)
			buf.WriteString(" = ")
			buf.WriteString(val.Text())
		}

		buf.WriteString(" }")

		return buf.String()

	default:
		return ""
	}
}

// Mapping is an ordered collection of name → Value pairs. Setting an
// existing name overwrites the bound value while keeping the name's
// original position.
type Mapping struct {
	names []string
	index map[string]int
	vals  []Value
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.names)
}

// Set binds name to v, overwriting any existing binding in place.
func (m *Mapping) Set(name string, v Value) {
	if i, ok := m.index[name]; ok {
		m.vals[i] = v

		return
	}

	m.index[name] = len(m.names)
	m.names = append(m.names, name)
	m.vals = append(m.vals, v)
}

// Get returns the Value bound to name.
func (m *Mapping) Get(name string) (Value, bool) {
	i, ok := m.index[name]
	if !ok {
		return Value{}, false
	}

	return m.vals[i], true
}

// Names returns the entry names in declaration order.
func (m *Mapping) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// All returns an iterator over entries in declaration order.
func (m *Mapping) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, name := range m.names {
			if !yield(name, m.vals[i]) {
				return
			}
		}
	}
}

// Merge copies every entry of other into m, in order, using the same
// overwrite rule as Set.
func (m *Mapping) Merge(other *Mapping) {
	for name, v := range other.All() {
		m.Set(name, v)
	}
}
