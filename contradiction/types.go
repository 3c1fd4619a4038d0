package contradiction

import "github.com/nonogram/solver/linecache"

type config struct {
	cache *linecache.Cache
}

func defaultConfig() config {
	return config{}
}

// Option configures a Probe call.
type Option func(*config)

// WithCache supplies a shared linecache.Cache so the many trial
// propagations a probe performs reuse each other's memoized line
// solves, and so a caller that already ran propagate.Solve with a cache
// keeps benefiting from it here.
func WithCache(c *linecache.Cache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}
