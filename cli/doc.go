// Package cli contains the command line interface for sparqlet.
//
// # Usage
//
// The CLI provides logging and profiling configuration:
//
//	sparqlet --log-level=debug eval 'a + b'
//
// # Commands
//
//   - eval: compile an expression and evaluate it against each row of a
//     tab-separated result document (default command)
//   - dump: parse a result document and print it as a tree, YAML, or JSON
//   - browse: explore a result document in an interactive table
//   - init: write a configuration file seeded with current flag values
//
// Result documents are read from the per-command source argument, from the
// global --source flag, or from stdin.
//
// # Configuration Loader
//
// The package includes a Kong configuration loader that reads YAML config
// files and converts them to Kong flag values. Command-line flags override
// config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag
// (go build -tags pprof):
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
//
// # Examples
//
//	# Sum two columns for every row
//	sparqlet eval 'a + b' -f results.tsv
//
//	# Dump a document as YAML with debug logging
//	sparqlet --log-level=debug dump yaml results.tsv
//
//	# Browse a document read from stdin
//	curl -s $ENDPOINT | sparqlet browse
package cli
