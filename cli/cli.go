package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/FrancisEgan/turtledebug/cli/cmd"
	"github.com/FrancisEgan/turtledebug/exprenv"
	"github.com/FrancisEgan/turtledebug/log"
	"github.com/FrancisEgan/turtledebug/luaenv"
	"github.com/FrancisEgan/turtledebug/pkg"
)

// CLI is the top-level command-line interface for turtledebug.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source []string `help:"Lua source file(s) to load into the inspected environment" name:"source" short:"s" type:"existingfile"`

	Init  cmd.Init  `cmd:"" help:"Initialize session file"`
	Watch cmd.Watch `cmd:"" help:"Open the interactive inspector"`

	Inspect cmd.Inspect `cmd:"" default:"withargs" help:"Resolve and print expressions"`
}

// Run executes the turtledebug CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.SessionIdentifier: configPath(baseSession),
		cmd.CacheIdentifier:   cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	env, closeEnv, err := buildEnv(ctx, cli.Source)
	if err != nil {
		return err
	}
	defer closeEnv()

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithEnv(ctx, env)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

// buildEnv constructs the inspected environment. Lua sources, when
// given, are loaded in order into a shared state; duplicates named via
// symlinks or differing relative paths load only once. Without sources
// the environment exposes host and process facts instead.
func buildEnv(
	ctx context.Context,
	sources []string,
) (cmd.Environment, func(), error) {
	if len(sources) == 0 {
		log.DebugContext(ctx, "no sources given, inspecting system facts")

		return exprenv.System(), func() {}, nil
	}

	env := luaenv.New()

	seen := make(map[fileKey]struct{})

	for _, src := range sources {
		file, ok := openUniqueFile(src, seen)
		if !ok {
			continue
		}

		err := env.Load(filepath.Base(src), file)

		file.Close()

		if err != nil {
			env.Close()

			return nil, func() {}, pkg.ErrLoadSource.Wrapf("%s", src).Wrap(err)
		}

		log.DebugContext(ctx, "loaded source", slog.String("file", src))
	}

	return env, env.Close, nil
}
