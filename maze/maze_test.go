package maze_test

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/mazetest"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/stategraph"
)

// PipelineSuite runs the full parse → graph → search → tiles pipeline.
type PipelineSuite struct {
	suite.Suite
}

// TestFixtures checks both answers on every known maze.
func (s *PipelineSuite) TestFixtures() {
	for _, tc := range mazetest.Cases() {
		s.Run(tc.Name, func() {
			res, err := maze.SolveReader(strings.NewReader(tc.Maze))
			require.NoError(s.T(), err)
			s.Equal(tc.MinCost, res.MinCost)
			s.Equal(tc.TileCount, res.TileCount)
			s.Equal(res.Tiles.Len(), res.TileCount)
			s.Positive(res.States)
			s.Positive(res.Edges)
			s.NotEmpty(res.EndFacings)
		})
	}
}

// TestLCorridorScenario is the 4×4 single-turn scenario.
func (s *PipelineSuite) TestLCorridorScenario() {
	res, err := maze.SolveReader(strings.NewReader(mazetest.LCorridor))
	require.NoError(s.T(), err)
	s.Equal(int64(6+1000), res.MinCost)
	s.Equal(7, res.TileCount)
	s.Equal([]grid.Direction{grid.Down}, res.EndFacings)
}

// TestMirrorRoutesTie keeps both end facings of the tied routes.
func (s *PipelineSuite) TestMirrorRoutesTie() {
	res, err := maze.SolveReader(strings.NewReader(mazetest.MirrorRoutes))
	require.NoError(s.T(), err)
	s.ElementsMatch([]grid.Direction{grid.Up, grid.Down}, res.EndFacings)
	s.Equal(12, res.TileCount)
}

// TestDeterministic re-runs the pipeline and expects identical answers.
func (s *PipelineSuite) TestDeterministic() {
	m := grid.MustParse(mazetest.SampleLarge)
	first, err := maze.Solve(m)
	require.NoError(s.T(), err)
	for i := 0; i < 3; i++ {
		again, err := maze.Solve(m)
		require.NoError(s.T(), err)
		s.Equal(first.MinCost, again.MinCost)
		s.Equal(first.Tiles.Positions(), again.Tiles.Positions())
	}
}

func (s *PipelineSuite) TestCustomCosts() {
	res, err := maze.Solve(grid.MustParse(mazetest.LCorridor), maze.WithStepCost(2), maze.WithTurnCost(10))
	require.NoError(s.T(), err)
	s.Equal(int64(22), res.MinCost)
	s.Equal(7, res.TileCount)

	_, err = maze.Solve(grid.MustParse(mazetest.LCorridor), maze.WithTurnCost(-1))
	s.ErrorIs(err, stategraph.ErrOptionViolation)

	_, err = maze.Solve(grid.MustParse(mazetest.LCorridor), maze.WithStepCost(0))
	s.ErrorIs(err, stategraph.ErrOptionViolation)
}

// TestHugeTurnCost keeps both answers exact near the int64 limit and
// reports an overflowing optimum explicitly.
func (s *PipelineSuite) TestHugeTurnCost() {
	m := grid.MustParse(mazetest.MirrorRoutes)

	turn := int64(math.MaxInt64 / 4)
	res, err := maze.Solve(m, maze.WithTurnCost(turn))
	require.NoError(s.T(), err)
	s.Equal(3*turn+6, res.MinCost)
	s.Equal(12, res.TileCount)

	_, err = maze.Solve(m, maze.WithTurnCost(math.MaxInt64/2))
	s.ErrorIs(err, dijkstra.ErrCostOverflow)
}

func (s *PipelineSuite) TestErrors() {
	_, err := maze.Solve(nil)
	s.ErrorIs(err, maze.ErrNilGrid)

	_, err = maze.SolveReader(strings.NewReader("S.x\n..E\n"))
	s.ErrorIs(err, grid.ErrMalformedInput)

	_, err = maze.SolveReader(strings.NewReader(mazetest.Unreachable))
	s.ErrorIs(err, dijkstra.ErrUnreachableEnd)
	s.ErrorIs(err, dijkstra.ErrNoPathFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = maze.Solve(grid.MustParse(mazetest.Sample), maze.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

// TestLogger sees one debug line per phase.
func (s *PipelineSuite) TestLogger() {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	_, err := maze.Solve(grid.MustParse(mazetest.Sample), maze.WithLogger(logger))
	require.NoError(s.T(), err)

	out := buf.String()
	for _, phase := range []string{"state graph built", "minimal cost found", "distance table ready", "optimal tiles collected"} {
		s.Contains(out, phase)
	}
}

func (s *PipelineSuite) TestRender() {
	m := grid.MustParse(mazetest.Sample)
	res, err := maze.Solve(m)
	require.NoError(s.T(), err)

	want := `###############
#.......#....E#
#.#.###.#.###O#
#.....#.#...#O#
#.###.#####.#O#
#.#.#.......#O#
#.#.#####.###O#
#..OOOOOOOOO#O#
###O#O#####O#O#
#OOO#O....#O#O#
#O#O#O###.#O#O#
#OOOOO#...#O#O#
#O###.#.#.#O#O#
#S..#.....#OOO#
###############
`
	s.Equal(want, maze.Render(m, res))
	s.Equal(mazetest.Sample, maze.Render(m, nil))
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}
