package tiles

import (
	"errors"
	"slices"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/stategraph"
)

var (
	// ErrNilInput is returned when the graph or the table is nil.
	ErrNilInput = errors.New("tiles: graph and distance table are required")

	// ErrGraphMismatch is returned when the table was computed over another graph.
	ErrGraphMismatch = errors.New("tiles: distance table belongs to a different graph")
)

// Set is a set of grid positions. The zero value is not usable; Collect
// returns ready sets.
type Set struct {
	members map[grid.Position]struct{}
}

func newSet() *Set {
	return &Set{members: make(map[grid.Position]struct{})}
}

// Len returns the number of distinct positions.
func (s *Set) Len() int { return len(s.members) }

// Contains reports whether p is in the set.
func (s *Set) Contains(p grid.Position) bool {
	_, ok := s.members[p]
	return ok
}

// Positions returns the members in row-major order.
func (s *Set) Positions() []grid.Position {
	out := make([]grid.Position, 0, len(s.members))
	for p := range s.members {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b grid.Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

func (s *Set) add(p grid.Position) { s.members[p] = struct{}{} }

// Collect returns every position on at least one minimal-cost path from the
// start state of g to the end cell.
//
// Behavior:
//  1. Seed the worklist with all end states tied at the minimal distance.
//  2. Pop v; for each incoming edge (u, v, w) with dist(u) + w == dist(v),
//     mark the cells the edge spans and push u on first discovery.
//  3. Stop when the worklist is empty.
//
// Returns ErrNilInput, ErrGraphMismatch, or the error of dt.MinAtEnd
// (dijkstra.ErrUnreachableEnd / dijkstra.ErrNoPathFound).
func Collect(g *stategraph.Graph, dt *dijkstra.DistanceTable) (*Set, error) {
	if g == nil || dt == nil {
		return nil, ErrNilInput
	}
	if dt.Graph() != g {
		return nil, ErrGraphMismatch
	}
	_, seeds, err := dt.MinAtEnd()
	if err != nil {
		return nil, err
	}

	set := newSet()
	seen := make([]bool, g.Len())
	work := make([]int, 0, len(seeds))
	for _, id := range seeds {
		seen[id] = true
		work = append(work, id)
		set.add(g.State(id).Pos)
	}

	for len(work) > 0 {
		v := work[len(work)-1]
		work = work[:len(work)-1]
		dv := dt.Distance(v)

		for _, e := range g.In(v) {
			u := e.From
			// tight: dist(u) + w == dist(v), compared without overflow
			if !dt.Reachable(u) || dt.Distance(u) > dv || e.Cost != dv-dt.Distance(u) {
				continue
			}
			mark(set, g, e)
			if !seen[u] {
				seen[u] = true
				work = append(work, u)
			}
		}
	}

	return set, nil
}

// mark adds the cells spanned by e. Turn edges do not move, so only their
// own cell is added.
func mark(set *Set, g *stategraph.Graph, e stategraph.Edge) {
	from, to := g.State(e.From), g.State(e.To)
	set.add(from.Pos)
	if e.Kind != stategraph.RunEdge {
		return
	}
	for p := from.Pos; p != to.Pos; {
		p = p.Step(from.Dir)
		set.add(p)
	}
}
