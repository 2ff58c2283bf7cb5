//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the semantic version of the sparqlet module embedded at build
// time, with the VERSION file's trailing newline removed. It is printed by
// the CLI when users invoke the --version flag.
var Version = strings.TrimSpace(rawVersion)

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "sparqlet"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "SPARQL parse-tree and result-set toolkit"
)
