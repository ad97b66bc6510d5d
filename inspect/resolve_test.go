package inspect

import (
	"errors"
	"testing"
)

// stubEnv is a minimal Env over native Go values with a canned Eval.
type stubEnv struct {
	vars map[string]any
	eval func(expr string) ([]Value, error)
}

func (e *stubEnv) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	if !ok {
		return NilValue(), false
	}

	return FromGo(v), true
}

func (e *stubEnv) Eval(expr string) ([]Value, error) {
	if e.eval == nil {
		return nil, errors.New("no eval capability")
	}

	return e.eval(expr)
}

func TestResolvePath(t *testing.T) {
	env := &stubEnv{vars: map[string]any{
		"config": map[string]any{
			"window": map[string]any{"width": 320.0},
			"title":  "turtle",
		},
		"count": 7,
	}}

	tests := []struct {
		expr      string
		wantKind  Kind
		wantFound bool
	}{
		{"count", KindNumber, true},
		{"config", KindContainer, true},
		{"config.title", KindString, true},
		{"config.window", KindContainer, true},
		{"config.window.width", KindNumber, true},
		{"missing", KindNil, false},
		{"missing.deeper", KindNil, false},
		{"count.x", KindNil, false},           // non-container intermediate
		{"config.title.x", KindNil, false},    // ditto, one level down
		{"config.window.missing", KindNil, true}, // absent final key
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			v, found := Resolve(env, tt.expr)
			if found != tt.wantFound {
				t.Fatalf("Resolve(%q) found = %v, want %v",
					tt.expr, found, tt.wantFound)
			}

			if v.Kind != tt.wantKind {
				t.Errorf("Resolve(%q) kind = %v, want %v",
					tt.expr, v.Kind, tt.wantKind)
			}
		})
	}
}

func TestResolveCallSingleResult(t *testing.T) {
	env := &stubEnv{eval: func(string) ([]Value, error) {
		return []Value{NumberValue(42)}, nil
	}}

	v, found := Resolve(env, "f()")
	if !found || v.Kind != KindNumber || v.Num != 42 {
		t.Errorf("Resolve(f()) = %+v, %v; want number 42, true", v, found)
	}
}

func TestResolveCallMultipleResults(t *testing.T) {
	env := &stubEnv{eval: func(string) ([]Value, error) {
		return []Value{
			NumberValue(1), StringValue("two"), BoolValue(true),
		}, nil
	}}

	v, found := Resolve(env, "f(1,2)")
	if !found || v.Kind != KindContainer {
		t.Fatalf("Resolve(f(1,2)) = %+v, %v; want container, true", v, found)
	}

	if n := v.Box.Len(); n != 3 {
		t.Errorf("packaged %d results, want 3", n)
	}

	if got := v.Box.Index(NumKey(2)); got.Kind != KindString || got.Str != "two" {
		t.Errorf("result[2] = %+v, want string \"two\"", got)
	}
}

func TestResolveCallCapsResults(t *testing.T) {
	env := &stubEnv{eval: func(string) ([]Value, error) {
		vals := make([]Value, MaxResults+3)
		for i := range vals {
			vals[i] = NumberValue(float64(i + 1))
		}

		return vals, nil
	}}

	v, found := Resolve(env, "many()")
	if !found || v.Kind != KindContainer {
		t.Fatalf("Resolve(many()) = %+v, %v; want container, true", v, found)
	}

	if n := v.Box.Len(); n != MaxResults {
		t.Errorf("packaged %d results, want %d", n, MaxResults)
	}
}

func TestResolveCallFailure(t *testing.T) {
	env := &stubEnv{eval: func(string) ([]Value, error) {
		return nil, errors.New("boom")
	}}

	v, found := Resolve(env, "explode()")
	if found || v.Kind != KindNil {
		t.Errorf("Resolve(explode()) = %+v, %v; want nil, false", v, found)
	}
}

func TestResolveCallNoResults(t *testing.T) {
	env := &stubEnv{eval: func(string) ([]Value, error) {
		return nil, nil
	}}

	v, found := Resolve(env, "noop()")
	if !found || v.Kind != KindNil {
		t.Errorf("Resolve(noop()) = %+v, %v; want nil, true", v, found)
	}
}

func TestResolveDoesNotEvalPaths(t *testing.T) {
	called := false
	env := &stubEnv{
		vars: map[string]any{"a": 1},
		eval: func(string) ([]Value, error) {
			called = true

			return nil, nil
		},
	}

	Resolve(env, "a")

	if called {
		t.Error("dotted-path resolution invoked Eval")
	}
}
