// Package mazetest holds shared maze fixtures and their known answers for
// tests across the module.
package mazetest

// Case is a maze together with its expected minimal cost and tile count.
type Case struct {
	Name      string
	Maze      string
	MinCost   int64
	TileCount int
}

// Corridor is a straight corridor of five steps with no turn.
const Corridor = `########
#S....E#
########
`

// LCorridor is a 4×4 grid whose only route needs exactly one turn.
const LCorridor = `S...
###.
###.
###E
`

// OpenRoom has no walls; start and end share a row.
const OpenRoom = `.......
.S...E.
.......
`

// MirrorRoutes has two mirror-image routes of equal cost around a wall,
// arriving at the end with different facings.
const MirrorRoutes = `#######
#.....#
#S###E#
#.....#
#######
`

// Unreachable has no route from start to end.
const Unreachable = `#####
#S#E#
#####
`

// Sample is the first well-known example maze.
const Sample = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

// SampleLarge is the second well-known example maze.
const SampleLarge = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

// Cases lists every solvable fixture with its answers under the default
// costs (step 1, turn 1000).
func Cases() []Case {
	return []Case{
		{Name: "corridor", Maze: Corridor, MinCost: 5, TileCount: 6},
		{Name: "l-corridor", Maze: LCorridor, MinCost: 1006, TileCount: 7},
		{Name: "open-room", Maze: OpenRoom, MinCost: 4, TileCount: 5},
		{Name: "mirror-routes", Maze: MirrorRoutes, MinCost: 3006, TileCount: 12},
		{Name: "sample", Maze: Sample, MinCost: 7036, TileCount: 45},
		{Name: "sample-large", Maze: SampleLarge, MinCost: 11048, TileCount: 64},
	}
}
