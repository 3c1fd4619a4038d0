package solve

import (
	"fmt"

	"github.com/nonogram/solver/board"
	"github.com/nonogram/solver/contradiction"
	"github.com/nonogram/solver/linecache"
	"github.com/nonogram/solver/propagate"
)

// Solve runs constraint propagation on b, then — unless WithoutProbing
// was given — falls back to contradiction probing whenever propagation
// alone leaves the board not fully solved. It returns once propagation
// and (if it ran) probing each reach a fixpoint.
//
// A board with no consistent solution reports the propagation or
// probing stage's error unchanged (wrapped with %w, so errors.Is still
// matches propagate.ErrInconsistentBoard or contradiction.ErrNoSolution);
// a board probing cannot fully resolve reports contradiction.ErrAmbiguous
// alongside a Stats value reflecting the partial progress made — callers
// that only need the best-effort partial solution should check
// errors.Is(err, contradiction.ErrAmbiguous) and use Stats/the board's
// current cells rather than treating it as fatal.
func Solve(b *board.Board, opts ...Option) (Stats, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cache := linecache.New(cfg.cacheCapacity)

	narrowed, err := propagate.Solve(b, propagate.WithRowsFirst(cfg.rowsFirst), propagate.WithCache(cache))
	if err != nil {
		return Stats{CellsNarrowed: narrowed, CacheHitRate: cache.Stats().HitRate()}, fmt.Errorf("solve: propagation: %w", err)
	}

	stats := Stats{
		CellsNarrowed: narrowed,
		Solved:        b.IsSolvedFull(),
	}

	if stats.Solved || cfg.disableProbing {
		stats.CacheHitRate = cache.Stats().HitRate()

		return stats, nil
	}

	stats.Probed = true
	probeErr := contradiction.Probe(b, contradiction.WithCache(cache))
	stats.Solved = b.IsSolvedFull()
	stats.CacheHitRate = cache.Stats().HitRate()

	if probeErr != nil {
		return stats, fmt.Errorf("solve: probing: %w", probeErr)
	}

	return stats, nil
}
