package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/FrancisEgan/turtledebug/log"
	"github.com/FrancisEgan/turtledebug/session"
)

// Init writes a default session file.
type Init struct {
	Force bool `help:"Overwrite existing session file" short:"f"`
}

// Run executes the init command.
func (c *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	path := sessionPathFrom(ctx)
	if path == "" {
		panic("internal error: session path undefined")
	}

	return c.write(ctx, path)
}

// write persists the default session to path, refusing to clobber an
// existing file unless forced.
func (c *Init) write(ctx context.Context, path string) error {
	_, err := os.Stat(path)
	if err == nil && !c.Force {
		return ErrInitSession.
			With(slog.String("file", path)).
			Wrap(ErrSessionExists)
	}

	if err := session.Default().Save(path); err != nil {
		return ErrInitSession.
			With(slog.String("file", path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized session file", slog.String("path", path))

	return nil
}
