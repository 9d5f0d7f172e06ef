package log

import (
	"io"
	"time"
)

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithDefaults returns an option that resets the configuration to its
// default values, writing to w.
func WithDefaults(w io.Writer) Option {
	return func(cfg config) config {
		cfg.output = w
		cfg.timeLayout = DefaultTimeLayout
		cfg.level = DefaultLevel
		cfg.format = DefaultFormat
		cfg.caller = DefaultCaller
		cfg.pretty = DefaultPretty

		return cfg
	}
}

// WithOutput sets the log output writer.
func WithOutput(w io.Writer) Option {
	return func(cfg config) config {
		cfg.output = w

		return cfg
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat sets the log output format.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithTimeLayout sets the timestamp layout. Layout names from the time
// package ("RFC3339", "Kitchen", ...) are recognized; any other string is
// used verbatim. An empty layout omits timestamps.
func WithTimeLayout(layout string) Option {
	return func(cfg config) config {
		cfg.timeLayout = namedTimeLayout(layout)

		return cfg
	}
}

// WithCaller enables or disables caller information in log output.
func WithCaller(caller bool) Option {
	return func(cfg config) config {
		cfg.caller = caller

		return cfg
	}
}

// WithPretty enables or disables colorized pretty printing for text
// output.
func WithPretty(pretty bool) Option {
	return func(cfg config) config {
		cfg.pretty = pretty

		return cfg
	}
}

// namedTimeLayout maps time package layout names to their layouts.
func namedTimeLayout(name string) string {
	switch name {
	case "ANSIC":
		return time.ANSIC
	case "UnixDate":
		return time.UnixDate
	case "RFC822":
		return time.RFC822
	case "RFC850":
		return time.RFC850
	case "RFC1123":
		return time.RFC1123
	case "RFC3339":
		return time.RFC3339
	case "RFC3339Nano":
		return time.RFC3339Nano
	case "Kitchen":
		return time.Kitchen
	case "Stamp":
		return time.Stamp
	case "StampMilli":
		return time.StampMilli
	case "DateTime":
		return time.DateTime
	case "TimeOnly":
		return time.TimeOnly
	default:
		return name
	}
}
