// Package stategraph defines the graph types, options and sentinel errors.
package stategraph

import (
	"context"
	"errors"
	"fmt"
)

// Default cost model.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// Sentinel errors for graph construction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to Build.
	ErrNilGrid = errors.New("stategraph: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stategraph: invalid option supplied")
)

// EdgeKind tells turn edges from run edges.
type EdgeKind uint8

const (
	// TurnEdge keeps the position and rotates the facing by 90°.
	TurnEdge EdgeKind = iota
	// RunEdge keeps the facing and moves straight to a decision point.
	RunEdge
)

// String returns "turn" or "run".
func (k EdgeKind) String() string {
	if k == RunEdge {
		return "run"
	}
	return "turn"
}

// Edge is a directed, weighted connection between two state handles.
type Edge struct {
	From, To int      // state handles
	Cost     int64    // non-negative
	Kind     EdgeKind // turn or run
}

// Option configures Build via functional arguments.
// If an Option is invalid (e.g. negative cost), it is recorded internally
// and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds the cost model and execution context of Build.
type Options struct {
	// Ctx allows cancellation of long builds.
	Ctx context.Context

	// StepCost is charged for every cell a run edge moves across.
	StepCost int64

	// TurnCost is charged for every 90° rotation.
	TurnCost int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the standard cost model:
// step 1, turn 1000, context.Background().
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		StepCost: DefaultStepCost,
		TurnCost: DefaultTurnCost,
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

// WithStepCost sets the cost of moving one cell forward.
// The cost must be at least 1: run edges skip the cells between decision
// points, which is only exact while every step costs something.
// Other values are recorded as ErrOptionViolation.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: step cost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of one 90° rotation.
// Negative values are recorded as ErrOptionViolation.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: turn cost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}
