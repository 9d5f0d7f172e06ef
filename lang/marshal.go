package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ToNative converts a Value to its native Go representation: int64,
// float64, string, or map[string]any. Mapping order is not preserved in
// the native form; use EncodeYAML for order-preserving output.
func (v Value) ToNative() any {
	switch v.Kind {
	case KindInt:
		return v.Int

	case KindFloat:
		return v.Float

	case KindString:
		return v.Str

	case KindMapping:
		result := make(map[string]any, v.Map.Len())

		for name, val := range v.Map.All() {
			result[name] = val.ToNative()
		}

		return result

	default:
		return nil
	}
}

// toOrdered converts a Value to a form the YAML encoder serializes with
// mapping entries in declaration order.
func (v Value) toOrdered() any {
	if v.Kind != KindMapping {
		return v.ToNative()
	}

	result := make(yaml.MapSlice, 0, v.Map.Len())

	for name, val := range v.Map.All() {
		result = append(result, yaml.MapItem{Key: name, Value: val.toOrdered()})
	}

	return result
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToNative())
}

// EncodeJSON writes the value as JSON to w.
func EncodeJSON(w io.Writer, v Value, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", "json"))
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// EncodeYAML writes the value as YAML to w, preserving mapping entry
// order.
func EncodeYAML(ctx context.Context, w io.Writer, v Value, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, v.toOrdered(), opts...)
	if err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", "yaml"))
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// EncodeTOML writes the value as TOML to w. TOML documents are tables,
// so the value must be a Mapping. Table keys follow the encoder's
// ordering; TOML tables carry no entry order.
func EncodeTOML(w io.Writer, v Value) error {
	if v.Kind != KindMapping {
		return ErrMarshal.With(
			slog.String("format", "toml"),
			slog.String("kind", v.Kind.String()),
		)
	}

	err := toml.NewEncoder(w).Encode(v.ToNative())
	if err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", "toml"))
	}

	return nil
}
