//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the deft module embedded at build time.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text and log output.
	Name = "deft"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Declarative constant language to TOML/YAML/JSON converter"
)
