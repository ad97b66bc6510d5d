// Package log provides a simplified logging interface based on
// [log/slog].
//
// A [Logger] is created with [Make] and configured with functional
// options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("ready", slog.String("tab", "watch"))
//
// The package also maintains a default logger used by the package-level
// functions; [Config] reconfigures it, which the CLI does as --log-*
// flags are parsed.
//
// Two output formats are supported, [FormatText] (default, with an
// optional colorized pretty handler) and [FormatJSON]. The extra
// [LevelTrace] level below debug carries high-volume events such as
// per-entry watch refreshes.
package log
