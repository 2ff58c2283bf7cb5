// Package cmd implements the sparqlet subcommands for parsing, dumping,
// and evaluating tab-separated result documents.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// of the default configuration file (without extension).
	ConfigIdentifier = "config"
)
