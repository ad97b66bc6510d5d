// Package exprenv adapts a native Go variable map to the [inspect.Env]
// capability, using expr-lang for call-form evaluation. It backs the
// inspector when no Lua sources are given: [System] builds a namespace
// of process and host facts that is useful to poke at out of the box.
package exprenv

import (
	"os"
	"os/user"
	"runtime"
	"slices"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/FrancisEgan/turtledebug/inspect"
)

// Env exposes a map of named Go values for inspection.
type Env struct {
	vars map[string]any
}

// New creates an environment over the given variables. The map is used
// as-is; callers must not mutate it during an inspection.
func New(vars map[string]any) *Env {
	if vars == nil {
		vars = map[string]any{}
	}

	return &Env{vars: vars}
}

// System creates the default environment of host and process facts.
func System() *Env {
	return New(map[string]any{
		"platform": map[string]any{
			"os":   runtime.GOOS,
			"arch": runtime.GOARCH,
			"cpus": runtime.NumCPU(),
		},
		"hostname": getHostname(),
		"user":     getUser(),
		"shell":    os.Getenv("SHELL"),
		"cwd":      getCwd(),
		"pid":      os.Getpid(),
		"env":      processEnv(),
		"getenv":   os.Getenv,
	})
}

// Lookup implements [inspect.Env].
func (e *Env) Lookup(name string) (inspect.Value, bool) {
	v, ok := e.vars[name]
	if !ok {
		return inspect.NilValue(), false
	}

	return inspect.FromGo(v), true
}

// Eval implements [inspect.Env] by compiling and running the expression
// with expr-lang against the variable map. expr expressions produce a
// single result, so the returned slice always has one element on
// success.
func (e *Env) Eval(src string) ([]inspect.Value, error) {
	program, err := expr.Compile(
		src,
		expr.Env(e.vars),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, err
	}

	out, err := expr.Run(program, e.vars)
	if err != nil {
		return nil, err
	}

	return []inspect.Value{inspect.FromGo(out)}, nil
}

// Globals returns the sorted top-level variable names, for completion.
func (e *Env) Globals() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func getHostname() string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}

	return host
}

func getUser() string {
	u, err := user.Current()
	if err != nil {
		return os.Getenv("USER")
	}

	return u.Username
}

func getCwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	return cwd
}

func processEnv() map[string]any {
	env := map[string]any{}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}
