package cmd

import (
	"context"
	"log/slog"

	"github.com/FrancisEgan/turtledebug/cli/cmd/tui"
	"github.com/FrancisEgan/turtledebug/log"
	"github.com/FrancisEgan/turtledebug/session"
)

// Watch opens the interactive inspector, restoring and persisting
// session state across runs.
type Watch struct{}

// Run executes the watch command.
func (c *Watch) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := EnvFrom(ctx)
	if env == nil {
		return ErrNoEnvironment
	}

	path := sessionPathFrom(ctx)

	sess, err := session.Load(path)
	if err != nil {
		// A corrupt session file is not fatal; start from defaults.
		log.WarnContext(ctx, "session discarded",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}

	final, err := tui.Run(ctx, env, sess)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "session saved", slog.String("path", path))

	return final.Save(path)
}
