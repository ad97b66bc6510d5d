//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the turtledebug module embedded at
// build time.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across
	// the project. It appears in help text and default config paths.
	Name = "turtledebug"
	// Description is a short, human-readable summary of the project used
	// in help output.
	Description = "Runtime variable inspector with a persistent watch list"
)
