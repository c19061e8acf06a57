// Package grid defines core types and sentinel errors for the maze model.
package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the root error for every rejected maze text.
var ErrMalformedInput = errors.New("grid: malformed input")

// Sentinel parse errors. Each wraps ErrMalformedInput.
var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrInvalidCell indicates a character outside '#', '.', 'S', 'E'.
	ErrInvalidCell = fmt.Errorf("%w: invalid cell character", ErrMalformedInput)
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = fmt.Errorf("%w: start marker 'S' missing", ErrMalformedInput)
	// ErrMissingEnd indicates no 'E' marker was found.
	ErrMissingEnd = fmt.Errorf("%w: end marker 'E' missing", ErrMalformedInput)
	// ErrDuplicateStart indicates more than one 'S' marker.
	ErrDuplicateStart = fmt.Errorf("%w: more than one start marker 'S'", ErrMalformedInput)
	// ErrDuplicateEnd indicates more than one 'E' marker.
	ErrDuplicateEnd = fmt.Errorf("%w: more than one end marker 'E'", ErrMalformedInput)
)

// Text symbols of the maze format.
const (
	SymbolOpen  = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// Cell is the content of a single grid square.
type Cell uint8

const (
	// Open cells can be walked on. Start and End are open.
	Open Cell = iota
	// Wall cells block movement.
	Wall
)

// String returns the text symbol of the cell.
func (c Cell) String() string {
	if c == Wall {
		return string(SymbolWall)
	}
	return string(SymbolOpen)
}

// Position identifies a grid cell by row and column.
type Position struct {
	Row, Col int
}

// Add returns p moved by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Step returns the neighbour of p in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return p.Add(dr, dc)
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four orthogonal facings.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directionDeltas maps a Direction to its (row, col) unit offset.
var directionDeltas = [4][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

var directionNames = [4]string{
	Up:    "Up",
	Right: "Right",
	Down:  "Down",
	Left:  "Left",
}

// Directions lists every facing in clockwise order starting at Up.
func Directions() [4]Direction {
	return [4]Direction{Up, Right, Down, Left}
}

// RotateRight turns d clockwise by 90°.
func (d Direction) RotateRight() Direction { return (d + 1) % 4 }

// RotateLeft turns d counter-clockwise by 90°, i.e. three right rotations.
func (d Direction) RotateLeft() Direction { return (d + 3) % 4 }

// Opposite returns the facing rotated by 180°.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Delta returns the (row, col) unit offset of d.
func (d Direction) Delta() (dr, dc int) {
	v := directionDeltas[d%4]
	return v[0], v[1]
}

// String returns the name of d.
func (d Direction) String() string {
	if d > Left {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// State is a position together with the facing of the reindeer on it.
// Two states are equal iff both fields match.
type State struct {
	Pos Position
	Dir Direction
}

// String formats s as "(row,col)/Dir".
func (s State) String() string {
	return s.Pos.String() + "/" + s.Dir.String()
}
