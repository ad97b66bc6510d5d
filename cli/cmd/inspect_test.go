package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/FrancisEgan/turtledebug/inspect"
	"github.com/FrancisEgan/turtledebug/pkg"
)

// stubEnv is a minimal Environment over native Go values.
type stubEnv struct {
	vars map[string]any
}

func (s *stubEnv) Lookup(name string) (inspect.Value, bool) {
	v, ok := s.vars[name]
	if !ok {
		return inspect.NilValue(), false
	}

	return inspect.FromGo(v), true
}

func (s *stubEnv) Eval(string) ([]inspect.Value, error) {
	return nil, errors.New("eval not supported")
}

func (s *stubEnv) Globals() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}

	return names
}

func testEnv() *stubEnv {
	return &stubEnv{vars: map[string]any{
		"count": 42,
		"title": "main",
		"config": map[string]any{
			"window": map[string]any{
				"width":  800,
				"height": 600,
			},
		},
	}}
}

func TestInspectScalar(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"count", "count = 42\n"},
		{"title", `title = "main"` + "\n"},
		{"config.window.width", "config.window.width = 800\n"},
		{"config.window.missing", "config.window.missing = nil\n"},
		{"absent", "absent = nil (not found)\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		cmd := Inspect{Expr: []string{tt.expr}, Plain: true}
		if err := cmd.run(context.Background(), &buf, testEnv()); err != nil {
			t.Fatalf("run(%q) failed: %v", tt.expr, err)
		}

		if buf.String() != tt.want {
			t.Errorf("run(%q) = %q, want %q", tt.expr, buf.String(), tt.want)
		}
	}
}

func TestInspectContainer(t *testing.T) {
	var buf bytes.Buffer

	cmd := Inspect{Expr: []string{"config.window"}, Plain: true}
	if err := cmd.run(context.Background(), &buf, testEnv()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := strings.Join([]string{
		"config.window =",
		"  {",
		"    height = 600",
		"    width = 800",
		"  }",
	}, "\n") + "\n"

	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestInspectEmptyExpression(t *testing.T) {
	var buf bytes.Buffer

	cmd := Inspect{Expr: []string{"  "}, Plain: true}

	err := cmd.run(context.Background(), &buf, testEnv())
	if !errors.Is(err, pkg.ErrEmptyExpression) {
		t.Fatalf("got %v, want ErrEmptyExpression", err)
	}
}

func TestInspectMaxKeysOverride(t *testing.T) {
	var buf bytes.Buffer

	cmd := Inspect{Expr: []string{"config.window"}, Plain: true, MaxKeys: 1}
	if err := cmd.run(context.Background(), &buf, testEnv()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(buf.String(), "... (1 more keys)") {
		t.Errorf("truncation marker missing:\n%s", buf.String())
	}
}

func TestInspectStartingDepth(t *testing.T) {
	var buf bytes.Buffer

	cmd := Inspect{Expr: []string{"count"}, Plain: true, Depth: 2}
	if err := cmd.run(context.Background(), &buf, testEnv()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got, want := buf.String(), "    count = 42\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInspectMultipleExpressions(t *testing.T) {
	var buf bytes.Buffer

	cmd := Inspect{Expr: []string{"count", "title"}, Plain: true}
	if err := cmd.run(context.Background(), &buf, testEnv()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "count = 42\ntitle = \"main\"\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
