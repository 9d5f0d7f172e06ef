package lang

import (
	"log/slog"
	"strings"
)

// StripComments blanks every /# ... #/ span in src before lexing.
// Comments may span newlines and do not nest; each span ends at the first
// #/ after its opener. Blanked runes become spaces while newlines are
// kept, so token positions in the stripped text match the original
// source. An opener with no terminator is an error.
func StripComments(src string) (string, error) {
	var (
		buf  strings.Builder
		rest = src
		off  int
	)

	buf.Grow(len(src))

	for {
		open := strings.Index(rest, "/#")
		if open < 0 {
			buf.WriteString(rest)

			return buf.String(), nil
		}

		end := strings.Index(rest[open+2:], "#/")
		if end < 0 {
			line, col := position(src, off+open)

			return "", ErrUnterminatedComment.With(
				slog.Int("line", line),
				slog.Int("column", col),
			)
		}

		buf.WriteString(rest[:open])

		span := rest[open : open+2+end+2]
		for _, r := range span {
			if r == '\n' {
				buf.WriteRune('\n')
			} else {
				buf.WriteRune(' ')
			}
		}

		off += open + len(span)
		rest = rest[open+len(span):]
	}
}

// position converts a byte offset into 1-based line and column numbers.
func position(src string, off int) (line, col int) {
	line, col = 1, 1

	for _, r := range src[:off] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return line, col
}
