package maze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/stategraph"
	"github.com/katalvlaran/mazepath/tiles"
)

var (
	// ErrNilGrid is returned if Solve is given a nil grid.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrInconsistentCost is returned when the early-exit search and the
	// full distance table disagree on the minimal cost.
	ErrInconsistentCost = errors.New("maze: early-exit and full search disagree")
)

// Result holds both answers of one run plus graph statistics.
type Result struct {
	MinCost    int64            // minimal total cost start → end
	TileCount  int              // distinct cells on any minimal-cost path
	Tiles      *tiles.Set       // the cells themselves
	EndFacings []grid.Direction // facings in which the end is reached at MinCost
	States     int              // nodes of the state graph
	Edges      int              // edges of the state graph
}

// Options configures Solve.
type Options struct {
	Ctx      context.Context
	StepCost int64
	TurnCost int64
	Logger   *log.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns the standard cost model and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		StepCost: stategraph.DefaultStepCost,
		TurnCost: stategraph.DefaultTurnCost,
		Logger:   log.New(io.Discard),
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

// WithStepCost overrides the per-cell cost. Values below 1 are rejected
// by the graph builder with stategraph.ErrOptionViolation.
func WithStepCost(c int64) Option {
	return func(o *Options) { o.StepCost = c }
}

// WithTurnCost overrides the per-rotation cost. Negative values are
// rejected by the graph builder with stategraph.ErrOptionViolation.
func WithTurnCost(c int64) Option {
	return func(o *Options) { o.TurnCost = c }
}

// WithLogger sets the logger used for phase timings.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// SolveReader parses a maze from r and solves it.
func SolveReader(r io.Reader, opts ...Option) (*Result, error) {
	m, err := grid.Parse(r)
	if err != nil {
		return nil, err
	}
	return Solve(m, opts...)
}

// Solve runs the whole pipeline on m. Errors from every phase are wrapped
// with the phase name and keep their sentinel for errors.Is.
func Solve(m *grid.Grid, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger

	began := time.Now()
	g, err := stategraph.Build(m,
		stategraph.WithContext(o.Ctx),
		stategraph.WithStepCost(o.StepCost),
		stategraph.WithTurnCost(o.TurnCost),
	)
	if err != nil {
		return nil, fmt.Errorf("maze: build state graph: %w", err)
	}
	logger.Debug("state graph built", "states", g.Len(), "edges", g.EdgeCount(), "took", time.Since(began))

	began = time.Now()
	cost, err := dijkstra.MinCostToEnd(g, dijkstra.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("maze: shortest path: %w", err)
	}
	logger.Debug("minimal cost found", "cost", cost, "took", time.Since(began))

	began = time.Now()
	dt, err := dijkstra.AllDistances(g, dijkstra.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("maze: distance table: %w", err)
	}
	best, ends, err := dt.MinAtEnd()
	if err != nil {
		return nil, fmt.Errorf("maze: distance table: %w", err)
	}
	if best != cost {
		return nil, fmt.Errorf("%w: %d vs %d", ErrInconsistentCost, cost, best)
	}
	logger.Debug("distance table ready", "reachable_ends", len(ends), "took", time.Since(began))

	began = time.Now()
	set, err := tiles.Collect(g, dt)
	if err != nil {
		return nil, fmt.Errorf("maze: optimal tiles: %w", err)
	}
	logger.Debug("optimal tiles collected", "tiles", set.Len(), "took", time.Since(began))

	facings := make([]grid.Direction, 0, len(ends))
	for _, id := range ends {
		facings = append(facings, g.State(id).Dir)
	}

	return &Result{
		MinCost:    cost,
		TileCount:  set.Len(),
		Tiles:      set,
		EndFacings: facings,
		States:     g.Len(),
		Edges:      g.EdgeCount(),
	}, nil
}

// Render draws m with every optimal tile of res marked 'O'.
func Render(m *grid.Grid, res *Result) string {
	if res == nil || res.Tiles == nil {
		return m.String()
	}
	return m.Render(func(p grid.Position) rune {
		if res.Tiles.Contains(p) {
			return 'O'
		}
		return 0
	})
}
