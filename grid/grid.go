package grid

import "fmt"

// InitialDirection is the facing of the reindeer on the start cell.
const InitialDirection = Right

// Grid is an immutable rectangular maze with one start and one end cell.
// cells[row][col] holds the content of each square; start and end are open.
type Grid struct {
	width, height int
	cells         [][]Cell
	start, end    Position
	openCount     int
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, or an ErrMalformedInput-wrapped
// error when start or end lies outside the grid or on a wall.
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell, start, end Position) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	g := &Grid{width: w, height: h, start: start, end: end}
	g.cells = make([][]Cell, h)
	for y := 0; y < h; y++ {
		g.cells[y] = make([]Cell, w)
		copy(g.cells[y], cells[y])
		for _, c := range g.cells[y] {
			if c == Open {
				g.openCount++
			}
		}
	}
	if !g.Open(start) {
		return nil, fmt.Errorf("%w: start %v is not an open cell", ErrMalformedInput, start)
	}
	if !g.Open(end) {
		return nil, fmt.Errorf("%w: end %v is not an open cell", ErrMalformedInput, end)
	}
	if start == end {
		return nil, fmt.Errorf("%w: start and end share cell %v", ErrMalformedInput, start)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// OpenCount returns the number of open cells, start and end included.
func (g *Grid) OpenCount() int { return g.openCount }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// CellAt returns the cell at p, or false when p is outside the grid.
// Complexity: O(1).
func (g *Grid) CellAt(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return Wall, false
	}
	return g.cells[p.Row][p.Col], true
}

// Open reports whether p is inside the grid and not a wall.
func (g *Grid) Open(p Position) bool {
	c, ok := g.CellAt(p)
	return ok && c == Open
}

// Start returns the start state: the start cell facing InitialDirection.
func (g *Grid) Start() State {
	return State{Pos: g.start, Dir: InitialDirection}
}

// End returns the position of the end cell.
func (g *Grid) End() Position { return g.end }

// String renders the grid back into its text form.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid as text, replacing open cells for which mark
// returns a non-zero rune. Start and end markers always win.
// A nil mark renders the plain maze.
func (g *Grid) Render(mark func(Position) rune) string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Position{Row: y, Col: x}
			switch {
			case p == g.start:
				buf = append(buf, SymbolStart)
			case p == g.end:
				buf = append(buf, SymbolEnd)
			case g.cells[y][x] == Wall:
				buf = append(buf, SymbolWall)
			default:
				r := rune(0)
				if mark != nil {
					r = mark(p)
				}
				if r == 0 {
					r = SymbolOpen
				}
				buf = append(buf, string(r)...)
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
