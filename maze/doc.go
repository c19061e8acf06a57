// Package maze wires the maze engine together: parse → build the state
// graph → shortest-path searches → optimal tile closure.
//
// Solve returns both answers of a run at once:
//
//   - MinCost:   the minimal total cost from start to end;
//   - TileCount: the number of distinct cells on any path of that cost.
//
// Phases are logged at debug level through an injected
// github.com/charmbracelet/log logger; by default nothing is logged.
package maze
