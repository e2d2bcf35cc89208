package seed

import "github.com/katalvlaran/hyperrewrite/rng"

// Option customizes a generator's Config before it runs. Mirrors
// builder.BuilderOption's mutate-in-place shape.
type Option func(cfg *Config)

// Config holds the resolved knobs shared by every generator in this
// package. The zero Config is not meant to be used directly; build one
// with newConfig(opts...).
type Config struct {
	rand rng.Source
}

// WithRand injects the RNG used for edge orientation and the stochastic
// generators (Grid's coin-flip orientation, Random's point placement).
// Generators that need randomness fall back to rng.Crypto() if this is
// never supplied.
func WithRand(r rng.Source) Option {
	return func(cfg *Config) {
		if r != nil {
			cfg.rand = r
		}
	}
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{rand: rng.Crypto()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
