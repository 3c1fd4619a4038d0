package propagate

import "github.com/nonogram/solver/board"

// job is one line queued for (re-)solving.
type job struct {
	axis     board.Axis
	index    int
	priority int // lower pops first
	axisRank int // lower pops first on a priority tie
	seq      int64
}

// jobPQ is a min-heap of jobs ordered by priority, then axisRank, then
// insertion order (seq) — the same lazy-decrease-key shape as
// dijkstra's nodePQ: a line may be pushed again with a fresher priority
// while a stale copy still sits in the heap; popping the stale copy
// later is harmless; solving an unchanged line is a cache hit.
type jobPQ []*job

func (pq jobPQ) Len() int { return len(pq) }

func (pq jobPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	if pq[i].axisRank != pq[j].axisRank {
		return pq[i].axisRank < pq[j].axisRank
	}

	return pq[i].seq < pq[j].seq
}

func (pq jobPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *jobPQ) Push(x interface{}) { *pq = append(*pq, x.(*job)) }

func (pq *jobPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
