// Package dijkstra runs Dijkstra's shortest-path algorithm over a maze
// state graph built by package stategraph.
//
// Overview:
//
//   - MinCostToEnd answers "what is the cheapest way to reach the end": a
//     best-first search from the start state that stops the first time any
//     state on the end cell is popped from the priority queue.
//   - AllDistances runs the same search without early exit and returns a
//     DistanceTable holding the exact minimal cost of every reachable state.
//     Backward closures (package tiles) need it to test edge tightness
//     anywhere in the graph, not only along one discovered path.
//   - When several end states (different final facings) tie at the minimum,
//     DistanceTable.MinAtEnd reports all of them.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each state is extracted at most once from the priority queue.
//   - Each edge relaxation may push one new entry (lazy decrease-key).
//   - Space: O(V + E)
//   - O(V) for the distance and visited slices, indexed by state handle.
//   - O(E) worst-case entries in the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       a nil *stategraph.Graph was passed.
//   - ErrNegativeWeight: an edge with negative cost was found (O(E) pre-scan).
//     stategraph never produces one; the scan guards hand-built graphs.
//   - ErrNoPathFound:    the end cell was not reached by the search.
//   - ErrUnreachableEnd: wraps ErrNoPathFound; the graph holds no end state
//     at all, so the search was not even attempted.
//   - ErrCostOverflow:   the end was not reached because every remaining
//     path costs more than an int64 can hold.
//   - ErrBadMaxDistance: returned (via panic) if WithMaxDistance is negative.
//
// API reference:
//
//	func MinCostToEnd(g *stategraph.Graph, opts ...Option) (int64, error)
//	func AllDistances(g *stategraph.Graph, opts ...Option) (*DistanceTable, error)
//
// Thread safety:
//
//   - Both functions only read the graph; concurrent calls on the same graph
//     are safe. A DistanceTable is immutable.
package dijkstra
