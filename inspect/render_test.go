package inspect

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansiPattern.ReplaceAllString(l, "")
	}

	return out
}

// nested returns a container value wrapping n levels of single-key maps
// around an empty map, so the innermost container sits n levels deep.
func nested(n int) Value {
	inner := map[string]any{}
	for range n {
		inner = map[string]any{"next": inner}
	}

	return FromGo(inner)
}

func TestPlainRenderStructure(t *testing.T) {
	v := FromGo(map[string]any{
		"count": 3,
		"name":  "turtle",
		"on":    true,
		"tags":  []any{"a", "b"},
	})

	want := []string{
		"{",
		"  count = 3",
		"  name = \"turtle\"",
		"  on = true",
		"  tags =",
		"  {",
		"    [1] = \"a\"",
		"    [2] = \"b\"",
		"  }",
		"}",
	}

	got := DefaultPolicy().Plain(v, 0)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plain render mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoratedMatchesPlainStructure(t *testing.T) {
	v := FromGo(map[string]any{
		"num":  1.5,
		"str":  "x",
		"none": nil,
		"list": []any{1, 2, map[string]any{"deep": false}},
	})

	pol := DefaultPolicy()

	plain := pol.Plain(v, 0)
	decorated := pol.Decorated(v, 0)

	if len(plain) != len(decorated) {
		t.Fatalf("line count mismatch: plain %d, decorated %d",
			len(plain), len(decorated))
	}

	if diff := cmp.Diff(plain, stripANSI(decorated)); diff != "" {
		t.Errorf("variants differ beyond decoration (-plain +stripped):\n%s",
			diff)
	}
}

func TestRenderScalars(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"nil", NilValue(), "nil"},
		{"true", BoolValue(true), "true"},
		{"false", BoolValue(false), "false"},
		{"integer", NumberValue(42), "42"},
		{"negative", NumberValue(-7), "-7"},
		{"fraction", NumberValue(0.5), "0.5"},
		{"string", StringValue("hi"), `"hi"`},
		{"escaped", StringValue("a\x1b[31mb"), `"a\x1b[31mb"`},
		{"quoted", StringValue(`say "hi"`), `"say \"hi\""`},
		{"function", FuncValue(), "function()"},
		{"opaque", OpaqueValue(), "<userdata>"},
	}

	pol := DefaultPolicy()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pol.Plain(tt.val, 0)
			if len(got) != 1 {
				t.Fatalf("Plain() = %d lines, want 1", len(got))
			}

			if got[0] != tt.want {
				t.Errorf("Plain() = %q, want %q", got[0], tt.want)
			}
		})
	}
}

func TestRenderStartingDepthIndents(t *testing.T) {
	pol := DefaultPolicy()

	got := pol.Plain(NumberValue(1), 2)
	if want := "    1"; got[0] != want {
		t.Errorf("Plain(depth=2) = %q, want %q", got[0], want)
	}
}

func TestRenderEmptyContainer(t *testing.T) {
	got := DefaultPolicy().Plain(FromGo(map[string]any{}), 0)
	if len(got) != 1 || got[0] != "{}" {
		t.Errorf("Plain(empty) = %q, want [\"{}\"]", got)
	}
}

func TestRenderCycleEmitsOneSentinel(t *testing.T) {
	m := map[string]any{}
	m["self"] = m

	for _, variant := range []string{"plain", "decorated"} {
		t.Run(variant, func(t *testing.T) {
			pol := DefaultPolicy()

			var lines []string
			if variant == "plain" {
				lines = pol.Plain(FromGo(m), 0)
			} else {
				lines = stripANSI(pol.Decorated(FromGo(m), 0))
			}

			count := 0

			for _, l := range lines {
				if strings.Contains(l, CircularMark) {
					count++
				}
			}

			if count != 1 {
				t.Errorf("got %d circular sentinels, want 1\n%s",
					count, strings.Join(lines, "\n"))
			}
		})
	}
}

func TestRenderTransitiveCycle(t *testing.T) {
	a := map[string]any{}
	b := map[string]any{"back": a}
	a["fwd"] = b

	lines := DefaultPolicy().Plain(FromGo(a), 0)

	count := 0

	for _, l := range lines {
		if strings.Contains(l, CircularMark) {
			count++
		}
	}

	if count != 1 {
		t.Errorf("got %d circular sentinels, want 1\n%s",
			count, strings.Join(lines, "\n"))
	}
}

func TestRenderSharedSubtreeShortCircuits(t *testing.T) {
	shared := map[string]any{"x": 1}
	root := map[string]any{"a": shared, "b": shared}

	lines := DefaultPolicy().Plain(FromGo(root), 0)

	count := 0

	for _, l := range lines {
		if strings.Contains(l, CircularMark) {
			count++
		}
	}

	// The second reference to a container visited earlier in the same
	// traversal short-circuits, by identity rather than structure.
	if count != 1 {
		t.Errorf("got %d circular sentinels, want 1\n%s",
			count, strings.Join(lines, "\n"))
	}
}

func TestRenderMaxDepth(t *testing.T) {
	pol := DefaultPolicy()

	// Innermost container sits exactly at MaxDepth: truncated.
	deep := pol.Plain(nested(DefaultMaxDepth), 0)
	if !strings.Contains(strings.Join(deep, "\n"), MaxDepthMark) {
		t.Errorf("no %q sentinel at depth %d", MaxDepthMark, DefaultMaxDepth)
	}

	// One level shallower: fully expands, ending in the empty map.
	shallow := strings.Join(pol.Plain(nested(DefaultMaxDepth-1), 0), "\n")
	if strings.Contains(shallow, MaxDepthMark) {
		t.Errorf("unexpected %q sentinel at depth %d",
			MaxDepthMark, DefaultMaxDepth-1)
	}

	if !strings.Contains(shallow, "{}") {
		t.Errorf("deepest level did not expand:\n%s", shallow)
	}
}

func TestRenderMaxKeys(t *testing.T) {
	const total = 8

	m := make(map[string]any, total)
	for i := range total {
		m[fmt.Sprintf("key%02d", i)] = i
	}

	pol := DefaultPolicy()
	pol.MaxKeys = 5

	lines := pol.Plain(FromGo(m), 0)

	// Opening brace, MaxKeys entries, summary, closing brace.
	if want := pol.MaxKeys + 3; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s",
			len(lines), want, strings.Join(lines, "\n"))
	}

	summary := lines[len(lines)-2]
	if want := "  ... (3 more keys)"; summary != want {
		t.Errorf("summary line = %q, want %q", summary, want)
	}
}

func TestRenderVisitedStateDoesNotLeak(t *testing.T) {
	m := map[string]any{"x": 1}
	v := FromGo(m)
	pol := DefaultPolicy()

	first := pol.Plain(v, 0)
	second := pol.Plain(v, 0)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("successive renders differ (-first +second):\n%s", diff)
	}

	if strings.Contains(strings.Join(second, "\n"), CircularMark) {
		t.Errorf("visited state leaked between renders:\n%s",
			strings.Join(second, "\n"))
	}
}
