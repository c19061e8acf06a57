// Package dijkstra_test validates both searches on the shared maze fixtures,
// the tie-break policy at the end cell, distance caps and error sentinels.
package dijkstra_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/mazetest"
	"github.com/katalvlaran/mazepath/stategraph"
)

func build(t *testing.T, text string, opts ...stategraph.Option) *stategraph.Graph {
	t.Helper()
	g, err := stategraph.Build(grid.MustParse(text), opts...)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.MinCostToEnd(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	dt, err := dijkstra.AllDistances(nil)
	assert.Nil(t, dt)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_BadMaxDistancePanics(t *testing.T) {
	g := build(t, mazetest.Corridor)
	assert.Panics(t, func() { _, _ = dijkstra.MinCostToEnd(g, dijkstra.WithMaxDistance(-1)) })
}

func TestDijkstra_Cancelled(t *testing.T) {
	g := build(t, mazetest.Sample)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.MinCostToEnd(g, dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = dijkstra.AllDistances(g, dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. Fixtures: early-exit and full search agree with known answers.
// ------------------------------------------------------------------------

func TestDijkstra_Fixtures(t *testing.T) {
	for _, tc := range mazetest.Cases() {
		t.Run(tc.Name, func(t *testing.T) {
			g := build(t, tc.Maze)

			cost, err := dijkstra.MinCostToEnd(g)
			require.NoError(t, err)
			assert.Equal(t, tc.MinCost, cost)

			dt, err := dijkstra.AllDistances(g)
			require.NoError(t, err)
			assert.Equal(t, g.Len(), dt.Len())
			best, ids, err := dt.MinAtEnd()
			require.NoError(t, err)
			assert.Equal(t, tc.MinCost, best)
			assert.NotEmpty(t, ids)

			d, ok := dt.DistanceOf(g.State(g.Start()))
			assert.True(t, ok)
			assert.Zero(t, d)
		})
	}
}

// TestDijkstra_TiedEndStates reports both facings that reach the end at the
// same minimal cost.
func TestDijkstra_TiedEndStates(t *testing.T) {
	g := build(t, mazetest.MirrorRoutes)
	dt, err := dijkstra.AllDistances(g)
	require.NoError(t, err)

	best, ids, err := dt.MinAtEnd()
	require.NoError(t, err)
	assert.Equal(t, int64(3006), best)
	require.Len(t, ids, 2)

	dirs := []grid.Direction{g.State(ids[0]).Dir, g.State(ids[1]).Dir}
	assert.ElementsMatch(t, []grid.Direction{grid.Up, grid.Down}, dirs)
}

// ------------------------------------------------------------------------
// 3. Cost model properties.
// ------------------------------------------------------------------------

// corridor returns a walled corridor where E is n steps right of S.
func corridor(n int) string {
	wall := strings.Repeat("#", n+3)
	return wall + "\n#S" + strings.Repeat(".", n-1) + "E#\n" + wall + "\n"
}

// elbow returns a grid where E is right steps right and down steps below S,
// reachable only by one right-then-down turn.
func elbow(right, down int) string {
	var b strings.Builder
	b.WriteString("S" + strings.Repeat(".", right) + "\n")
	for i := 1; i <= down; i++ {
		last := "."
		if i == down {
			last = "E"
		}
		b.WriteString(strings.Repeat("#", right) + last + "\n")
	}
	return b.String()
}

func TestDijkstra_StraightCorridorCostsSteps(t *testing.T) {
	for n := 1; n <= 12; n++ {
		cost, err := dijkstra.MinCostToEnd(build(t, corridor(n)))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, int64(n), cost, "n=%d", n)
	}
}

func TestDijkstra_SingleTurnCostsStepsPlusPenalty(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {3, 3}, {5, 2}, {2, 7}} {
		cost, err := dijkstra.MinCostToEnd(build(t, elbow(sz[0], sz[1])))
		require.NoError(t, err, "elbow %v", sz)
		assert.Equal(t, int64(sz[0]+sz[1])+stategraph.DefaultTurnCost, cost, "elbow %v", sz)
	}
}

func TestDijkstra_CustomCosts(t *testing.T) {
	g := build(t, mazetest.LCorridor, stategraph.WithStepCost(2), stategraph.WithTurnCost(10))
	cost, err := dijkstra.MinCostToEnd(g)
	require.NoError(t, err)
	assert.Equal(t, int64(6*2+10), cost)
}

// ------------------------------------------------------------------------
// 4. Failure modes.
// ------------------------------------------------------------------------

func TestDijkstra_UnreachableEnd(t *testing.T) {
	g := build(t, mazetest.Unreachable)

	_, err := dijkstra.MinCostToEnd(g)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachableEnd)
	assert.ErrorIs(t, err, dijkstra.ErrNoPathFound)

	dt, err := dijkstra.AllDistances(g)
	require.NoError(t, err)
	_, _, err = dt.MinAtEnd()
	assert.ErrorIs(t, err, dijkstra.ErrUnreachableEnd)
}

// TestDijkstra_MaxDistance caps the search below the corridor length.
func TestDijkstra_MaxDistance(t *testing.T) {
	g := build(t, mazetest.Corridor)

	_, err := dijkstra.MinCostToEnd(g, dijkstra.WithMaxDistance(4))
	assert.ErrorIs(t, err, dijkstra.ErrNoPathFound)
	assert.NotErrorIs(t, err, dijkstra.ErrUnreachableEnd)

	dt, err := dijkstra.AllDistances(g, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	_, _, err = dt.MinAtEnd()
	assert.ErrorIs(t, err, dijkstra.ErrNoPathFound)

	cost, err := dijkstra.MinCostToEnd(g, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, int64(5), cost)
}

// TestDijkstra_CostOverflow reports a route whose cost does not fit in an
// int64 instead of calling the end unreachable.
func TestDijkstra_CostOverflow(t *testing.T) {
	// Three turns at MaxInt64/2 each overflow.
	g := build(t, mazetest.MirrorRoutes, stategraph.WithTurnCost(math.MaxInt64/2))

	_, err := dijkstra.MinCostToEnd(g)
	assert.ErrorIs(t, err, dijkstra.ErrCostOverflow)

	dt, err := dijkstra.AllDistances(g)
	require.NoError(t, err)
	_, _, err = dt.MinAtEnd()
	assert.ErrorIs(t, err, dijkstra.ErrCostOverflow)
}

// TestDijkstra_LargeCostsFit keeps exact answers when the optimum fits even
// though longer detours overflow.
func TestDijkstra_LargeCostsFit(t *testing.T) {
	turn := int64(math.MaxInt64 / 4)
	g := build(t, mazetest.MirrorRoutes, stategraph.WithTurnCost(turn))

	cost, err := dijkstra.MinCostToEnd(g)
	require.NoError(t, err)
	assert.Equal(t, 3*turn+6, cost)

	dt, err := dijkstra.AllDistances(g)
	require.NoError(t, err)
	best, ends, err := dt.MinAtEnd()
	require.NoError(t, err)
	assert.Equal(t, cost, best)
	assert.Len(t, ends, 2)
}

func TestDistanceTable_UnknownState(t *testing.T) {
	g := build(t, mazetest.Corridor)
	dt, err := dijkstra.AllDistances(g)
	require.NoError(t, err)

	d, ok := dt.DistanceOf(grid.State{Pos: grid.Position{Row: 1, Col: 3}, Dir: grid.Right})
	assert.False(t, ok, "corridor interior is not a node")
	assert.Equal(t, dijkstra.Unreachable, d)
	assert.Same(t, g, dt.Graph())
}

func ExampleMinCostToEnd() {
	m := grid.MustParse(mazetest.LCorridor)
	g, _ := stategraph.Build(m)
	cost, err := dijkstra.MinCostToEnd(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("min cost:", cost)
	// Output: min cost: 1006
}
