package msd

import "github.com/cwbudde/algo-msd/dsp/corr"

// Config holds the settings of an [Engine].
type Config struct {
	Backend corr.Backend
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default engine settings.
func DefaultConfig() Config {
	return Config{
		Backend: corr.AlgoFFT,
	}
}

// WithBackend selects the FFT backend used for the autocorrelation term.
func WithBackend(b corr.Backend) Option {
	return func(cfg *Config) {
		cfg.Backend = b
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
