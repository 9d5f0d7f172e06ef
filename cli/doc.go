// Package cli contains the command line interface for deft.
//
// # Usage
//
// The default command converts source documents to a markup format:
//
//	deft config.deft
//	deft --format=yaml config.deft
//	cat config.deft | deft -
//
// Sources may be given as the --source flag, as positional arguments to a
// subcommand, or as "-" to read standard input. Multiple sources are
// concatenated and converted as a single document.
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
//	go build -tags pprof -o deft .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/deft/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	deft --log-level=debug --pprof-mode=cpu config.deft
//
//	# Canonical reformatting of a source document
//	deft fmt config.deft
package cli
