// Package dijkstra implements Dijkstra's shortest-path algorithm on maze
// state graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Distances and visited flags live in slices indexed by state handle, not maps.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazepath/stategraph"
)

// MinCostToEnd returns the minimal cost from the start state of g to any
// state on the end cell. The search stops as soon as the first end state is
// popped from the priority queue; its distance is final at that moment.
//
// Returns ErrNilGraph, ErrNegativeWeight, ErrUnreachableEnd when the graph
// holds no end state, ErrNoPathFound when the search exhausts (e.g. under
// WithMaxDistance) without reaching the end, ErrCostOverflow, or the
// context error.
//
// Complexity: O((V + E) log V) worst case.
func MinCostToEnd(g *stategraph.Graph, opts ...Option) (int64, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return Unreachable, err
	}
	if len(g.EndStates()) == 0 {
		return Unreachable, ErrUnreachableEnd
	}

	end := g.End()
	found := -1
	err = r.process(func(u int) bool {
		if g.State(u).Pos == end {
			found = u
			return true
		}
		return false
	})
	if err != nil {
		return Unreachable, err
	}
	if found < 0 {
		if r.overflow {
			return Unreachable, ErrCostOverflow
		}
		return Unreachable, ErrNoPathFound
	}

	return r.dist[found], nil
}

// AllDistances runs a full single-source search from the start state of g
// and returns the exact minimal cost of every reachable state.
// Unreached states hold Unreachable. An unreachable end is not an error
// here; DistanceTable.MinAtEnd reports it.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func AllDistances(g *stategraph.Graph, opts ...Option) (*DistanceTable, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}
	if err = r.process(nil); err != nil {
		return nil, err
	}

	return &DistanceTable{graph: g, dist: r.dist, overflow: r.overflow}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *stategraph.Graph // The input graph; read-only.
	options Options           // Configuration options.
	dist    []int64           // handle → current best distance from the start.
	visited []bool            // handle → distance finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.

	overflow bool // some edge was skipped because its sum overflowed int64
}

// newRunner validates inputs and seeds the heap with the start state.
func newRunner(g *stategraph.Graph, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%d",
				ErrNegativeWeight, g.State(e.From), g.State(e.To), e.Cost)
		}
	}

	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	start := g.Start()
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r, nil
}

// process is the core loop. It repeatedly extracts the closest unvisited
// state, finalizes it, and relaxes its outgoing edges.
// If stop is non-nil and returns true for a finalized state, the loop ends
// before relaxing that state.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - stop reports true.
//   - The context is done.
func (r *runner) process(stop func(u int) bool) error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if stop != nil && stop(u) {
			return nil
		}
		r.relax(u)
	}

	return nil
}

// relax examines each edge outgoing from u and improves distances to its targets.
// Assumes r.dist[u] is finalized before calling relax(u).
// Edges whose sum would reach Unreachable are skipped and flagged: such a
// path costs more than any representable distance, so it only matters when
// nothing cheaper reaches the end.
func (r *runner) relax(u int) {
	for _, e := range r.g.Out(u) {
		v := e.To
		if e.Cost >= Unreachable-r.dist[u] {
			r.overflow = true
			continue
		}
		newDist := r.dist[u] + e.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		// “<” rather than “≤” avoids pushing duplicates when distances are equal.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a state handle and its current distance from the start.
type nodeItem struct {
	id   int   // state handle
	dist int64 // distance from the start
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Ties are broken by handle so pop order is deterministic.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
