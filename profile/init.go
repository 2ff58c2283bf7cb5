package profile

// Config functions return all supported pprof configuration parameters.
type Config func() (mode, path string, quiet bool)

// Start initializes the profiler and returns an interface for stopping it.
//
// Mode selects the profiler to run, and path is the output directory where
// profiling data will be written.
//
// Without the pprof build tag, or with an empty or unrecognized mode, the
// returned implementation is a no-op.
// Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

type settings struct {
	mode  string
	path  string
	quiet bool
}

// override wraps a settings mutation as a Config transformer.
func override(mod func(*settings)) func(Config) Config {
	return func(c Config) Config {
		var s settings

		s.mode, s.path, s.quiet = c()
		mod(&s)

		return func() (string, string, bool) {
			return s.mode, s.path, s.quiet
		}
	}
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Config) Config {
	return override(func(s *settings) { s.mode = mode })
}

// WithPath returns a functional option for setting a profiler's output path.
func WithPath(path string) func(Config) Config {
	return override(func(s *settings) { s.path = path })
}

// WithQuiet returns a functional option for setting a profiler's quiet flag.
func WithQuiet(quiet bool) func(Config) Config {
	return override(func(s *settings) { s.quiet = quiet })
}

type ignore struct{}

func (ignore) Stop() {}
