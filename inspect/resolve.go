package inspect

import "strings"

// MaxResults caps how many values of a multi-value call result are
// packaged by [Resolve]. Results past the cap are dropped silently.
const MaxResults = 5

// Env is the injected environment capability the resolver operates
// against. Implementations must not require [Resolve] to mutate
// inspected state: Lookup is a read, and Eval isolates whatever
// evaluation machinery the environment has behind a result that can
// fail safely.
type Env interface {
	// Lookup resolves a name in the environment's root namespace.
	Lookup(name string) (Value, bool)

	// Eval evaluates a call-like expression and returns its results in
	// order. Evaluation failures of any sort (compile error, runtime
	// error) are reported as a non-nil error, never propagated as a
	// panic.
	Eval(expr string) ([]Value, error)
}

// Resolve turns a path expression into a value.
//
// An expression containing a parenthesis is treated as call-like and
// handed to env.Eval: a failed evaluation resolves to (nil, false), a
// single result is returned as-is, and multiple results are packaged
// into an ordered [List] of at most [MaxResults] positions.
//
// Any other expression is a dot-separated path. The first segment is
// looked up in the root namespace; an unresolvable root fails. Each
// later segment requires the current value to be a container and indexes
// it by the segment's literal name, so a non-container intermediate
// fails while an absent final key resolves to nil.
//
// Callers are expected to trim input and reject empty strings before
// calling.
func Resolve(env Env, expr string) (Value, bool) {
	if strings.ContainsRune(expr, '(') {
		return resolveCall(env, expr)
	}

	segs := strings.Split(expr, ".")

	v, ok := env.Lookup(segs[0])
	if !ok {
		return NilValue(), false
	}

	for _, seg := range segs[1:] {
		if v.Kind != KindContainer {
			return NilValue(), false
		}

		v = v.Box.Index(StrKey(seg))
	}

	return v, true
}

func resolveCall(env Env, expr string) (Value, bool) {
	vals, err := env.Eval(expr)
	if err != nil {
		return NilValue(), false
	}

	switch len(vals) {
	case 0:
		return NilValue(), true
	case 1:
		return vals[0], true
	}

	if len(vals) > MaxResults {
		vals = vals[:MaxResults]
	}

	return ContainerValue(NewList(vals...)), true
}
