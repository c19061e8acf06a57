package stategraph

import (
	"slices"

	"github.com/katalvlaran/mazepath/grid"
)

// Graph is the compacted state graph of one maze. It is immutable once
// Build returns.
type Graph struct {
	grid      *grid.Grid
	states    []grid.State       // handle → state
	index     map[grid.State]int // state → handle
	out       [][]Edge           // handle → outgoing edges
	in        [][]Edge           // handle → incoming edges
	start     int
	edgeCount int
	stepCost  int64
	turnCost  int64
}

// Grid returns the maze the graph was built from.
func (g *Graph) Grid() *grid.Grid { return g.grid }

// Len returns the number of states.
func (g *Graph) Len() int { return len(g.states) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// StepCost returns the per-cell cost the graph was built with.
func (g *Graph) StepCost() int64 { return g.stepCost }

// TurnCost returns the per-rotation cost the graph was built with.
func (g *Graph) TurnCost() int64 { return g.turnCost }

// Start returns the handle of the start state. It is always 0.
func (g *Graph) Start() int { return g.start }

// End returns the end position of the maze.
func (g *Graph) End() grid.Position { return g.grid.End() }

// State returns the state behind handle id.
// Panics if id is out of range, like a slice index.
func (g *Graph) State(id int) grid.State { return g.states[id] }

// ID returns the handle of s, or false if s is not a node of the graph.
func (g *Graph) ID(s grid.State) (int, bool) {
	id, ok := g.index[s]
	return id, ok
}

// Out returns the outgoing edges of id. The slice must not be modified.
func (g *Graph) Out(id int) []Edge { return g.out[id] }

// In returns the incoming edges of id. The slice must not be modified.
func (g *Graph) In(id int) []Edge { return g.in[id] }

// EndStates returns the handles of every state located on the end cell,
// in ascending order. Empty if the end was never reached.
func (g *Graph) EndStates() []int {
	end := g.grid.End()
	var ids []int
	for _, d := range grid.Directions() {
		if id, ok := g.index[grid.State{Pos: end, Dir: d}]; ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Edges returns every edge, grouped by source handle in ascending order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	all := make([]Edge, 0, g.edgeCount)
	for _, es := range g.out {
		all = append(all, es...)
	}
	return all
}
