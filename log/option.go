package log

// Option transforms a config, returning the modified copy.
type Option func(config) config

// apply folds opts over cfg in order and returns the result.
func apply(cfg config, opts ...Option) config {
	for _, o := range opts {
		cfg = o(cfg)
	}

	return cfg
}
