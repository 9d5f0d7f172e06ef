package cmd

import (
	"bufio"
	"context"
	"log/slog"

	"github.com/ardnew/deft/lang"
)

// Conv converts source documents to a markup format on stdout.
type Conv struct {
	Format    string `default:"toml" enum:"toml,yaml,json" help:"Output markup format"              short:"t"`
	Indent    int    `default:"2"                          help:"Indent width for yaml/json output" short:"i"`
	Redeclare bool   `default:"false"                      help:"Allow constants to be redeclared"  negatable:""`

	Source []string `arg:"" help:"Source input file(s) or '-' for stdin" name:"source" optional:""`
}

// Run executes the conv command.
func (c *Conv) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := lang.ConvertReader(
		ctx,
		bufio.NewReader(Input(ctx, c.Source)),
		lang.WithRedeclare(c.Redeclare),
	)
	if err != nil {
		return ErrConvertSource.Wrap(err).
			With(slog.String("command", "conv"))
	}

	out := output(ctx)

	switch c.Format {
	case "yaml":
		err = lang.EncodeYAML(ctx, out, doc, c.Indent)
	case "json":
		err = lang.EncodeJSON(out, doc, c.Indent)
	default:
		err = lang.EncodeTOML(out, doc)
	}

	if err != nil {
		return ErrEncodeOutput.Wrap(err).
			With(
				slog.String("command", "conv"),
				slog.String("format", c.Format),
			)
	}

	return nil
}
