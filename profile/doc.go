// Package profile provides optional runtime profiling for the sparqlet
// command.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only when
// the "pprof" build tag is set. Without the tag every operation is a no-op
// with zero runtime overhead, and the profiling flags disappear from the
// command line.
//
// # Modes
//
// With the pprof tag, the following modes are available (see [Modes]):
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap memory profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace profiling
//
// # Usage
//
// A profiler is described by a [Config], built up with the With* options and
// started with [Config.Start]:
//
//	var cfg profile.Config = func() (string, string, bool) {
//	    return "", "", false
//	}
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//	defer cfg.Start().Stop()
//
// Profile files are written to the configured directory with names matching
// the mode (cpu.pprof, mem.pprof, ...).
//
// The sparqlet command exposes the same controls as flags when built with
// the tag:
//
//	sparqlet --pprof-mode cpu
//	sparqlet --pprof-mode heap --pprof-dir ./profiles
//
// The default output directory is pprof under the user cache directory, for
// example $XDG_CACHE_HOME/sparqlet/pprof on Linux.
//
// # Analysis
//
// Collected profiles are ordinary pprof files:
//
//	go tool pprof ./sparqlet /tmp/profiles/cpu.pprof
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//	go tool pprof -base=old.pprof new.pprof
//
// The tagged build also imports [net/http/pprof], so a program that starts
// an HTTP server gets the live endpoints under /debug/pprof/ as well.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
