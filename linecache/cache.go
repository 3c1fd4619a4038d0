package linecache

import (
	"container/list"
	"strconv"
	"strings"
	"sync"

	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
	"github.com/nonogram/solver/line"
)

// DefaultCapacity is used by New when capacity is zero or negative.
const DefaultCapacity = 10000

// SolveFunc matches line.Solve's signature; Cache.Solve calls it only on
// a cache miss.
type SolveFunc func(c clue.Clue, cells []cell.State, method line.Method) ([]cell.State, error)

type entry struct {
	key   string
	value []cell.State
}

// Cache is a bounded, concurrency-safe LRU memoizing line solves by the
// fingerprint of (clue, cells, method). Only successful solves are
// cached; ErrInconsistent results are recomputed every time, since an
// infeasible line is rare on any path that already passed board
// construction and cheap to re-detect relative to the bookkeeping of
// caching negative results.
type Cache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
	hits     int64
	misses   int64
}

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	Hits   int64
	Misses int64
}

// HitRate returns Hits / (Hits + Misses), or 0 if nothing has been
// requested yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// New returns an empty cache with the given capacity (DefaultCapacity if
// capacity <= 0).
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Cache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func fingerprint(c clue.Clue, cells []cell.State, method line.Method) string {
	var b strings.Builder

	b.WriteString(method.String())
	b.WriteByte('|')
	for _, blk := range c {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(blk.Length))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(int(blk.Color)))
		if blk.Blot {
			b.WriteByte('*')
		}
		b.WriteByte(')')
	}
	b.WriteByte('|')
	for _, s := range cells {
		b.WriteString(strconv.FormatUint(uint64(s), 36))
		b.WriteByte(',')
	}

	return b.String()
}

// Solve returns solveFn(c, cells, method), serving a cached copy when the
// exact same triple was solved before and recording the attempt in Stats
// either way. The returned slice is always a fresh copy: callers are free
// to mutate it.
func (cc *Cache) Solve(c clue.Clue, cells []cell.State, method line.Method, solveFn SolveFunc) ([]cell.State, error) {
	key := fingerprint(c, cells, method)

	cc.mu.Lock()
	if el, ok := cc.items[key]; ok {
		cc.order.MoveToFront(el)
		cc.hits++
		cached := el.Value.(*entry).value
		out := make([]cell.State, len(cached))
		copy(out, cached)
		cc.mu.Unlock()

		return out, nil
	}
	cc.misses++
	cc.mu.Unlock()

	result, err := solveFn(c, cells, method)
	if err != nil {
		return nil, err
	}

	stored := make([]cell.State, len(result))
	copy(stored, result)

	cc.mu.Lock()
	if el, ok := cc.items[key]; ok {
		cc.order.MoveToFront(el)
		el.Value.(*entry).value = stored
	} else {
		el := cc.order.PushFront(&entry{key: key, value: stored})
		cc.items[key] = el
		if cc.order.Len() > cc.capacity {
			oldest := cc.order.Back()
			if oldest != nil {
				cc.order.Remove(oldest)
				delete(cc.items, oldest.Value.(*entry).key)
			}
		}
	}
	cc.mu.Unlock()

	out := make([]cell.State, len(result))
	copy(out, result)

	return out, nil
}

// Stats returns a snapshot of the cache's hit/miss counters.
func (cc *Cache) Stats() Stats {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	return Stats{Hits: cc.hits, Misses: cc.misses}
}

// Len returns the number of entries currently cached.
func (cc *Cache) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	return cc.order.Len()
}
