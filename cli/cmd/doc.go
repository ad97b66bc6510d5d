// Package cmd provides the inspect, watch, and init subcommands.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// SessionIdentifier is the kong variable identifier containing the path
	// to the session file.
	SessionIdentifier = "session"
)
