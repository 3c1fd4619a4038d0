package solve

import "github.com/nonogram/solver/linecache"

// config holds the resolved settings for a single Solve call.
type config struct {
	rowsFirst      bool
	cacheCapacity  int
	disableProbing bool
}

func defaultConfig() config {
	return config{rowsFirst: true, cacheCapacity: linecache.DefaultCapacity}
}

// Option configures a Solve call.
type Option func(*config)

// WithRowsFirst controls which axis the propagation stage seeds first.
// See propagate.WithRowsFirst.
func WithRowsFirst(rowsFirst bool) Option {
	return func(c *config) {
		c.rowsFirst = rowsFirst
	}
}

// WithCacheCapacity overrides the line-solution cache's capacity
// (linecache.DefaultCapacity otherwise).
func WithCacheCapacity(capacity int) Option {
	return func(c *config) {
		c.cacheCapacity = capacity
	}
}

// WithoutProbing restricts Solve to constraint propagation alone: it
// returns after propagation reaches a fixpoint even if cells remain
// ambiguous, instead of falling back to contradiction probing.
func WithoutProbing() Option {
	return func(c *config) {
		c.disableProbing = true
	}
}

// Stats summarizes one Solve run.
type Stats struct {
	// CellsNarrowed is the number of cell narrowings performed by the
	// initial propagation stage. Narrowings made during probing are not
	// counted.
	CellsNarrowed int

	// Probed is true if contradiction probing ran (propagation alone
	// left at least one cell ambiguous).
	Probed bool

	// Solved is true if the board ended fully solved.
	Solved bool

	// CacheHitRate is the line-solution cache's hit rate over the whole
	// run.
	CacheHitRate float64
}
