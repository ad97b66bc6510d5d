// Package cli contains the command line interface for turtledebug.
//
// The CLI builds the inspected environment from Lua source files given
// with --source, or from built-in host and process facts when no
// sources are given. Three commands operate on that environment:
//
//	turtledebug inspect 'player.profile'  # one-shot resolve and print
//	turtledebug watch                     # interactive inspector
//	turtledebug init                      # write a default session file
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
