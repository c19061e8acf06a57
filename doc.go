// Package mazepath solves reindeer mazes: rectangular grids of walls and
// open cells with a start S and an end E, walked by a mover that faces one
// of four directions.
//
// 🚀 What does it compute?
//
//	• the minimal total cost from S (facing east) to E, where a forward step
//	  costs 1 and a quarter turn in place costs 1000;
//	• the number of distinct cells lying on at least one minimal-cost route.
//
// Under the hood, the work is split across small packages:
//
//	grid/        maze model, positions, directions and the text parser
//	stategraph/  (position, facing) states joined by turn and run edges
//	dijkstra/    minimal cost to the end and the full distance table
//	tiles/       backward walk over tight edges collecting optimal cells
//	maze/        one-call pipeline with logging and rendering
//	cmd/mazepath command line: solve, fetch, history
//
// Quick ASCII example:
//
//	S...
//	###.
//	###.
//	###E
//
// costs 6 steps plus one turn, 1006, and 7 cells lie on the route.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
