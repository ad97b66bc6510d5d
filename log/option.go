package log

// Option applies one logger setting to a config.
type Option func(config) config

// apply folds multiple options into a config, later options winning.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}
