//go:build !pprof

package profile

// Modes returns no modes when built without the pprof build tag.
func Modes() []string { return nil }

// start without the pprof build tag is always a no-op.
func start(_, _ string, _ bool) interface{ Stop() } {
	return ignore{}
}
