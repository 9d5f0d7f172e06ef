package cmd

import (
	"errors"
	"testing"
)

func TestFmtRun_Inline(t *testing.T) {
	ctx, buf := testContext(t)

	path := writeSource(t, "(def  x   5){a=x}")

	fmtCmd := &Fmt{Indent: 0, Source: []string{path}}
	if err := fmtCmd.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := "(def x 5) { a = x }\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFmtRun_Indented(t *testing.T) {
	ctx, buf := testContext(t)

	path := writeSource(t, "{a=1 m={b=q(s)}}")

	fmtCmd := &Fmt{Indent: 2, Source: []string{path}}
	if err := fmtCmd.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := "{\n  a = 1\n  m = {\n    b = q(s)\n  }\n}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFmtRun_SyntaxError(t *testing.T) {
	ctx, _ := testContext(t)

	path := writeSource(t, "(def broken")

	fmtCmd := &Fmt{Source: []string{path}}

	err := fmtCmd.Run(ctx)
	if !errors.Is(err, ErrFormatSource) {
		t.Fatalf("expected ErrFormatSource, got %v", err)
	}
}
