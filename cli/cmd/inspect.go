package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/FrancisEgan/turtledebug/inspect"
	"github.com/FrancisEgan/turtledebug/log"
	"github.com/FrancisEgan/turtledebug/pkg"
	"github.com/FrancisEgan/turtledebug/watch"
)

// Inspect resolves one or more expressions against the inspected
// environment and prints their rendered trees.
type Inspect struct {
	Expr []string `arg:"" help:"Dotted paths or call expressions to resolve" name:"expr"`

	Plain    bool `help:"Disable color decoration"                   short:"P"`
	Depth    int  `help:"Starting indent depth"                      placeholder:"N"`
	MaxDepth int  `help:"Maximum traversal depth (0 for default)"    placeholder:"N"`
	MaxKeys  int  `help:"Maximum keys per container (0 for default)" placeholder:"N"`
}

// Run executes the inspect command.
func (c *Inspect) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := EnvFrom(ctx)
	if env == nil {
		return ErrNoEnvironment
	}

	return c.run(ctx, os.Stdout, env)
}

func (c *Inspect) run(ctx context.Context, w io.Writer, env Environment) error {
	pol := c.policy()

	render := pol.Decorated
	if c.Plain {
		render = pol.Plain
	}

	pad := strings.Repeat(pol.Indent, max(0, c.Depth))

	for _, raw := range c.Expr {
		expr := strings.TrimSpace(raw)
		if expr == "" {
			return pkg.ErrEmptyExpression
		}

		log.TraceContext(ctx, "inspect", slog.String("expr", expr))

		v, found := inspect.Resolve(env, expr)
		if !found {
			fmt.Fprintf(w, "%s%s = %s\n", pad, expr, watch.NotFound)

			continue
		}

		if v.Kind == inspect.KindContainer {
			fmt.Fprintf(w, "%s%s =\n", pad, expr)

			for _, line := range render(v, max(0, c.Depth)+1) {
				fmt.Fprintln(w, line)
			}
		} else {
			fmt.Fprintf(w, "%s%s = %s\n", pad, expr, render(v, 0)[0])
		}
	}

	return nil
}

// policy returns the traversal bounds with any flag overrides applied.
func (c *Inspect) policy() inspect.Policy {
	pol := inspect.DefaultPolicy()

	if c.MaxDepth > 0 {
		pol.MaxDepth = c.MaxDepth
	}

	if c.MaxKeys > 0 {
		pol.MaxKeys = c.MaxKeys
	}

	return pol
}
