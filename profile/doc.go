// Package profile provides optional runtime profiling for turtledebug.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// Without the tag (the default build), every operation is a no-op with
// zero runtime overhead; with it, the --pprof-mode and --pprof-dir CLI
// flags select a profiling mode and an output directory.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to
// retrieve the list programmatically. Profile files are written to the
// configured directory (by default the pprof subdirectory of the user
// cache directory) with names matching the mode:
//
//	go build -tags pprof .
//	turtledebug --pprof-mode=cpu watch
//	go tool pprof ./turtledebug cpu.pprof
//
// Building with the tag also imports [net/http/pprof], so embedding an
// HTTP server exposes the usual /debug/pprof/ endpoints.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
