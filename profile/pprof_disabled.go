//go:build !pprof

package profile

// Modes returns nil when built without the pprof build tag: no
// profiling modes are selectable.
func Modes() []string { return nil }

// start is a no-op when built without the pprof build tag.
func start(string, string, bool) interface{ Stop() } { return ignore{} }
