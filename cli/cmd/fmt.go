package cmd

import (
	"bufio"
	"context"
	"log/slog"

	"github.com/ardnew/deft/lang"
)

// Fmt reprints source documents in canonical syntax on stdout.
type Fmt struct {
	Indent int `default:"2" help:"Indent width for formatted output" short:"i"`

	Source []string `arg:"" help:"Source input file(s) or '-' for stdin" name:"source" optional:""`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	ast, err := lang.ParseReader(ctx, bufio.NewReader(Input(ctx, f.Source)))
	if err != nil {
		return ErrFormatSource.Wrap(err).
			With(slog.String("command", "fmt"))
	}

	return ast.Format(ctx, output(ctx), f.Indent)
}
