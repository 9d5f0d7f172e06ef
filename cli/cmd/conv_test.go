package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

// testContext builds a context carrying a kong.Context whose stdout is
// redirected to the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var stub struct{}

	parser, err := kong.New(&stub)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatalf("kong parse: %v", err)
	}

	var buf bytes.Buffer
	ktx.Stdout = &buf

	return WithContext(context.Background(), ktx), &buf
}

// writeSource writes a source document to a temp file and returns its
// path.
func writeSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "source.deft")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestConvRun_TOML(t *testing.T) {
	ctx, buf := testContext(t)

	path := writeSource(t, "(def P 8001) { port = P addr = q(localhost) }")

	conv := &Conv{Format: "toml", Source: []string{path}}
	if err := conv.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	got := buf.String()

	for _, frag := range []string{"port = 8001", "addr = 'localhost'"} {
		if !strings.Contains(got, frag) {
			t.Errorf("output missing %q:\n%s", frag, got)
		}
	}
}

func TestConvRun_YAML(t *testing.T) {
	ctx, buf := testContext(t)

	path := writeSource(t, "{ zeta = 1 alpha = 2 }")

	conv := &Conv{Format: "yaml", Indent: 2, Source: []string{path}}
	if err := conv.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := "zeta: 1\nalpha: 2\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestConvRun_JSON(t *testing.T) {
	ctx, buf := testContext(t)

	path := writeSource(t, "{ a = 1 }")

	conv := &Conv{Format: "json", Source: []string{path}}
	if err := conv.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := `{"a":1}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

// TestConvRun_MultipleSources tests that sources are concatenated into
// one document, with constants visible across file boundaries.
func TestConvRun_MultipleSources(t *testing.T) {
	ctx, buf := testContext(t)

	tmpdir := t.TempDir()

	defs := filepath.Join(tmpdir, "defs.deft")
	uses := filepath.Join(tmpdir, "uses.deft")

	if err := os.WriteFile(defs, []byte("(def base 10)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(uses, []byte("{ v = $[base 2 *] }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	conv := &Conv{Format: "json", Source: []string{defs, uses}}
	if err := conv.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := `{"v":20}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestConvRun_SyntaxError(t *testing.T) {
	ctx, _ := testContext(t)

	path := writeSource(t, "{ a = }")

	conv := &Conv{Format: "toml", Source: []string{path}}

	err := conv.Run(ctx)
	if !errors.Is(err, ErrConvertSource) {
		t.Fatalf("expected ErrConvertSource, got %v", err)
	}
}

func TestConvRun_Redeclare(t *testing.T) {
	input := "(def X 1) (def X 2) { a = X }"

	ctx, _ := testContext(t)

	conv := &Conv{Format: "toml", Source: []string{writeSource(t, input)}}
	if err := conv.Run(ctx); !errors.Is(err, ErrConvertSource) {
		t.Fatalf("expected ErrConvertSource, got %v", err)
	}

	ctx, buf := testContext(t)

	allow := &Conv{
		Format:    "toml",
		Redeclare: true,
		Source:    []string{writeSource(t, input)},
	}
	if err := allow.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if !strings.Contains(buf.String(), "a = 2") {
		t.Errorf("output missing overwritten constant:\n%s", buf.String())
	}
}
