// Package profile provides optional runtime profiling for the deft
// command.
//
// Profiling integrates [github.com/pkg/profile] and is enabled at build
// time with the "pprof" build tag. Without the tag, every operation is a
// no-op with zero runtime overhead.
//
// Supported modes (with the pprof tag): allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace. Use [Modes] to retrieve the
// list programmatically. Profile files are written to the configured
// directory with names matching the mode (e.g. cpu.pprof) and analyzed
// with:
//
//	go tool pprof ./deft /path/to/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
