// Package stategraph builds the compacted state graph of a maze.
//
// Overview:
//
//   - A node is a State: a grid position together with a facing.
//   - A turn edge rotates the facing by 90° in place and costs the turn
//     penalty. A 180° turn is two turn edges, never one.
//   - A run edge moves straight ahead from a state to the next decision
//     point and costs the number of cells walked times the step cost.
//   - A decision point is the end cell, or a cell with an open neighbour on
//     either side perpendicular to the direction of travel. Corridor cells
//     in between never become nodes; their count is folded into the run
//     edge's cost.
//
// Nodes live in an arena: each discovered State gets a stable integer
// handle in discovery order, and all adjacency is stored per handle, both
// outgoing (for forward search) and incoming (for backward closures).
//
// Complexity:
//
//   - Build: O(V + E) time and memory, V = O(W×H×4), E ≤ 3·V.
//
// Errors:
//
//   - ErrNilGrid:         Build was given a nil grid.
//   - ErrOptionViolation: a negative cost option was supplied.
//   - ctx.Err():          the context passed via WithContext was cancelled.
//
// Thread safety:
//
//   - A Graph is read-only once Build returns and may be shared between
//     goroutines. Slices returned by Out and In must not be modified.
package stategraph
