package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeLevel(buf, r.Level)

	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		buf.WriteByte(' ')
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		buf.WriteByte(' ')
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	// Groups are flattened; the group name prefixes nothing.
	return h
}

// writeLevel writes a colorized level tag followed by a space.
func (h *prettyTextHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	var color string

	switch {
	case level >= slog.LevelError:
		color = colorRed
	case level >= slog.LevelWarn:
		color = colorYellow
	case level >= slog.LevelInfo:
		color = colorGreen
	case level >= slog.LevelDebug:
		color = colorBlue
	default:
		color = colorMagenta
	}

	buf.WriteString(color)
	buf.WriteString(Level(level).String())
	buf.WriteString(colorReset)
	buf.WriteByte(' ')
}

// writeAttr writes one attribute, applying the handler's ReplaceAttr and
// resolving LogValuer values.
func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for i, member := range a.Value.Group() {
			if i > 0 {
				buf.WriteByte(' ')
			}

			h.writeAttr(buf, member)
		}

		return
	}

	switch a.Key {
	case slog.TimeKey:
		buf.WriteString(colorGray)
		buf.WriteString(a.Value.String())
		buf.WriteString(colorReset)
		buf.WriteByte(' ')

	case slog.LevelKey:
		// Level is written by writeLevel

	default:
		buf.WriteString(colorCyan)
		buf.WriteString(a.Key)
		buf.WriteString(colorReset)
		buf.WriteByte('=')
		buf.WriteString(a.Value.String())
	}
}
