// Package tiles recovers every grid cell that lies on at least one
// minimal-cost path through a maze.
//
// How:
//
//   - An edge (u, v) with cost w is tight when dist(u) + w == dist(v).
//     Every cost-optimal path from the start consists of tight edges only.
//   - Collect seeds a worklist with every end state tied at the minimal
//     cost and walks incoming tight edges backwards. Each state is pushed
//     at most once, so the closure is bounded by the edge count no matter
//     how many (possibly exponentially many) optimal paths exist.
//   - A tight run edge marks every cell from u to v inclusive; a tight turn
//     edge marks only its own cell. Overlapping runs are absorbed by the
//     Position set.
//
// Complexity: O(V + E + C) time, where C is the total length of the tight
// run edges; O(V + W×H) memory.
package tiles
