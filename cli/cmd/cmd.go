package cmd

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/FrancisEgan/turtledebug/inspect"
)

// Environment is the capability commands need from the inspected
// environment: resolution plus the global names used for completion.
type Environment interface {
	inspect.Env

	Globals() []string
}

type (
	contextKey struct{}
	envKey     struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithEnv returns a new context.Context containing the inspected
// environment.
func WithEnv(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// EnvFrom retrieves the environment stored in ctx by WithEnv.
// Returns nil if no environment was stored.
func EnvFrom(ctx context.Context) Environment {
	env, _ := ctx.Value(envKey{}).(Environment)

	return env
}

// sessionPathFrom returns the session file path from kong vars, or the
// empty string when unavailable.
func sessionPathFrom(ctx context.Context) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[SessionIdentifier]
}
