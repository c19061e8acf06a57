package stategraph

import (
	"context"

	"github.com/katalvlaran/mazepath/grid"
)

// builder encapsulates mutable state of a single Build.
type builder struct {
	graph *Graph
	grid  *grid.Grid
	opts  Options
	ctx   context.Context
	queue []int
}

// Build expands the state graph of g breadth-first from its start state.
//
// For every state (p, d) taken from the queue:
//  1. Emit turn edges to (p, d.RotateRight()) and (p, d.RotateLeft()).
//  2. Walk forward in d until a wall (no edge) or a decision point q, and
//     emit the run edge (p, d) → (q, d) with the accumulated step cost.
//  3. Enqueue every newly discovered state exactly once.
//
// Returns ErrNilGrid, ErrOptionViolation, or the context error when the
// build is cancelled.
// Complexity: O(V + E) time and memory.
func Build(g *grid.Grid, opts ...Option) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	capacity := g.OpenCount() * 4
	b := &builder{
		graph: &Graph{
			grid:     g,
			states:   make([]grid.State, 0, capacity),
			index:    make(map[grid.State]int, capacity),
			out:      make([][]Edge, 0, capacity),
			in:       make([][]Edge, 0, capacity),
			stepCost: o.StepCost,
			turnCost: o.TurnCost,
		},
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, capacity),
	}
	b.graph.start = b.discover(g.Start())
	if err := b.loop(); err != nil {
		return nil, err
	}

	return b.graph, nil
}

// loop expands queued states until the queue is drained or ctx is done.
func (b *builder) loop() error {
	for head := 0; head < len(b.queue); head++ {
		// cancellation check (once per state)
		select {
		case <-b.ctx.Done():
			return b.ctx.Err()
		default:
		}
		b.expand(b.queue[head])
	}
	return nil
}

// discover returns the handle of s, allocating and enqueuing it on first sight.
func (b *builder) discover(s grid.State) int {
	if id, ok := b.graph.index[s]; ok {
		return id
	}
	id := len(b.graph.states)
	b.graph.states = append(b.graph.states, s)
	b.graph.index[s] = id
	b.graph.out = append(b.graph.out, nil)
	b.graph.in = append(b.graph.in, nil)
	b.queue = append(b.queue, id)
	return id
}

// expand emits the outgoing edges of state id.
func (b *builder) expand(id int) {
	s := b.graph.states[id]

	for _, d := range [2]grid.Direction{s.Dir.RotateRight(), s.Dir.RotateLeft()} {
		to := b.discover(grid.State{Pos: s.Pos, Dir: d})
		b.addEdge(Edge{From: id, To: to, Cost: b.opts.TurnCost, Kind: TurnEdge})
	}

	if q, cost, ok := b.walk(s); ok {
		to := b.discover(grid.State{Pos: q, Dir: s.Dir})
		b.addEdge(Edge{From: id, To: to, Cost: cost, Kind: RunEdge})
	}
}

// walk moves from s straight ahead and returns the first decision point
// with the cost of getting there, or false if a wall comes first.
func (b *builder) walk(s grid.State) (grid.Position, int64, bool) {
	var cost int64
	p := s.Pos
	for {
		p = p.Step(s.Dir)
		if !b.grid.Open(p) {
			return grid.Position{}, 0, false
		}
		cost += b.opts.StepCost
		if b.isDecisionPoint(p, s.Dir) {
			return p, cost, true
		}
	}
}

// isDecisionPoint reports whether a walker heading d may stop at p: p is the
// end, or a side branch opens there.
func (b *builder) isDecisionPoint(p grid.Position, d grid.Direction) bool {
	return p == b.grid.End() ||
		b.grid.Open(p.Step(d.RotateLeft())) ||
		b.grid.Open(p.Step(d.RotateRight()))
}

func (b *builder) addEdge(e Edge) {
	b.graph.out[e.From] = append(b.graph.out[e.From], e)
	b.graph.in[e.To] = append(b.graph.in[e.To], e)
	b.graph.edgeCount++
}
