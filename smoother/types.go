package smoother

// Config holds the smoother's tunables.
type Config struct {
	Iter      int     // passes over every control point
	Guesses   int     // candidate offsets per hill-climb step
	Offset    float64 // maximum candidate offset length
	Intervals int     // curvature-energy sub-intervals per knot span
	PosMult   float64 // positional-energy scale factor
}

// DefaultConfig returns the smoother's documented default tunables.
func DefaultConfig() Config {
	return Config{
		Iter:      20,
		Guesses:   20,
		Offset:    0.05,
		Intervals: 20,
		PosMult:   1,
	}
}

// Option mutates a Config, following the functional-options pattern used
// throughout this module for multi-knob configuration.
type Option func(*Config)

// WithIter overrides the number of hill-climb passes.
func WithIter(n int) Option { return func(c *Config) { c.Iter = n } }

// WithGuesses overrides the number of candidate offsets per step.
func WithGuesses(n int) Option { return func(c *Config) { c.Guesses = n } }

// WithOffset overrides the maximum candidate offset length. OFFSET=0
// makes the smoother a no-op.
func WithOffset(v float64) Option { return func(c *Config) { c.Offset = v } }

// WithIntervals overrides the curvature-energy sub-interval count.
func WithIntervals(n int) Option { return func(c *Config) { c.Intervals = n } }

// WithPosMult overrides the positional-energy scale factor.
func WithPosMult(v float64) Option { return func(c *Config) { c.PosMult = v } }

// NewConfig builds a Config from DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
