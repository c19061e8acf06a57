// Package dijkstra defines sentinel errors, options and the DistanceTable.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/stategraph"
)

// Unreachable is the distance recorded for states the search never reached.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *stategraph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPathFound indicates the end cell was never reached from the start.
	ErrNoPathFound = errors.New("dijkstra: no path from start to end")

	// ErrUnreachableEnd indicates the graph has no state on the end cell.
	// It wraps ErrNoPathFound.
	ErrUnreachableEnd = fmt.Errorf("%w: end cell is unreachable from the start state", ErrNoPathFound)

	// ErrCostOverflow indicates a path cost that does not fit in an int64.
	ErrCostOverflow = errors.New("dijkstra: path cost overflows int64")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the search.
//
// MaxDistance – states whose distance would exceed this value are not
// explored. Default is math.MaxInt64 (no cap).
type Options struct {
	Ctx         context.Context // cancellation, checked once per pop
	MaxDistance int64           // Maximum distance to explore
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.MaxInt64,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DistanceTable maps every state handle of a graph to its minimal cost from
// the start state. It is never mutated after AllDistances returns.
type DistanceTable struct {
	graph    *stategraph.Graph
	dist     []int64
	overflow bool
}

// Graph returns the graph the table was computed over.
func (t *DistanceTable) Graph() *stategraph.Graph { return t.graph }

// Len returns the number of states covered by the table.
func (t *DistanceTable) Len() int { return len(t.dist) }

// Distance returns the minimal cost of state id, or Unreachable.
func (t *DistanceTable) Distance(id int) int64 { return t.dist[id] }

// Reachable reports whether state id was reached by the search.
func (t *DistanceTable) Reachable(id int) bool { return t.dist[id] != Unreachable }

// DistanceOf looks up s by value. The boolean is false if s is not a node
// of the graph or was not reached.
func (t *DistanceTable) DistanceOf(s grid.State) (int64, bool) {
	id, ok := t.graph.ID(s)
	if !ok || !t.Reachable(id) {
		return Unreachable, false
	}
	return t.dist[id], true
}

// MinAtEnd returns the minimal cost over all states on the end cell and
// the handles of every end state that achieves it, ascending.
// Returns ErrUnreachableEnd if the graph has no end state, ErrNoPathFound
// if none of them was reached, or ErrCostOverflow if none was reached and
// the search dropped paths whose cost overflowed int64.
func (t *DistanceTable) MinAtEnd() (int64, []int, error) {
	ends := t.graph.EndStates()
	if len(ends) == 0 {
		return Unreachable, nil, ErrUnreachableEnd
	}
	best := Unreachable
	var ids []int
	for _, id := range ends {
		switch d := t.dist[id]; {
		case d < best:
			best = d
			ids = append(ids[:0], id)
		case d == best && d != Unreachable:
			ids = append(ids, id)
		}
	}
	if best == Unreachable {
		if t.overflow {
			return Unreachable, nil, ErrCostOverflow
		}
		return Unreachable, nil, ErrNoPathFound
	}
	return best, ids, nil
}
