// Package grid models a reindeer maze: an immutable rectangular grid of
// open and wall cells with a single start and a single end cell.
//
// What:
//
//   - Grid wraps the parsed cells together with the start and end markers.
//   - Position, Direction and State are small comparable value types that
//     can be used directly as map keys by the graph packages.
//   - Parse reads the text form (one row per line, '#', '.', 'S', 'E').
//
// Why:
//
//   - The state-space builder needs O(1) bounds and wall checks while it
//     walks corridors, and must never observe a grid that changes under it.
//
// Complexity:
//
//   - Parse:  O(W×H) time and memory.
//   - CellAt: O(1).
//
// Errors:
//
//   - ErrMalformedInput is the root of every parse failure; the specific
//     sentinels (ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell,
//     ErrMissingStart, ErrMissingEnd, ErrDuplicateStart, ErrDuplicateEnd)
//     all wrap it, so errors.Is(err, ErrMalformedInput) holds for each.
package grid
