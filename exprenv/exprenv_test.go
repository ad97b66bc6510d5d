package exprenv

import (
	"testing"

	"github.com/FrancisEgan/turtledebug/inspect"
)

func TestLookup(t *testing.T) {
	env := New(map[string]any{
		"count":  3,
		"nested": map[string]any{"x": 1},
	})

	v, ok := env.Lookup("count")
	if !ok || v.Kind != inspect.KindNumber || v.Num != 3 {
		t.Errorf("Lookup(count) = %+v, %v", v, ok)
	}

	if _, ok := env.Lookup("missing"); ok {
		t.Error("Lookup(missing) found")
	}

	v, ok = inspect.Resolve(env, "nested.x")
	if !ok || v.Num != 1 {
		t.Errorf("Resolve(nested.x) = %+v, %v", v, ok)
	}
}

func TestEval(t *testing.T) {
	env := New(map[string]any{
		"double": func(n int) int { return n * 2 },
	})

	v, ok := inspect.Resolve(env, "double(21)")
	if !ok || v.Kind != inspect.KindNumber || v.Num != 42 {
		t.Errorf("Resolve(double(21)) = %+v, %v", v, ok)
	}

	// Malformed expression fails the resolution, never panics.
	if _, ok := inspect.Resolve(env, "double("); ok {
		t.Error("Resolve(double() found on malformed expression")
	}
}

func TestSystemFacts(t *testing.T) {
	env := System()

	for _, name := range []string{"platform", "hostname", "cwd", "env", "pid"} {
		if _, ok := env.Lookup(name); !ok {
			t.Errorf("System() missing %q", name)
		}
	}

	v, ok := inspect.Resolve(env, "platform.os")
	if !ok || v.Kind != inspect.KindString || v.Str == "" {
		t.Errorf("Resolve(platform.os) = %+v, %v", v, ok)
	}
}

func TestSystemGetenvCall(t *testing.T) {
	t.Setenv("TURTLEDEBUG_TEST", "shell")

	v, ok := inspect.Resolve(System(), `getenv("TURTLEDEBUG_TEST")`)
	if !ok || v.Str != "shell" {
		t.Errorf("Resolve(getenv(...)) = %+v, %v", v, ok)
	}
}

func TestGlobalsSorted(t *testing.T) {
	env := New(map[string]any{"b": 1, "a": 2, "c": 3})

	got := env.Globals()
	want := []string{"a", "b", "c"}

	if len(got) != len(want) {
		t.Fatalf("Globals() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Globals() = %v, want %v", got, want)
		}
	}
}
