package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a maze in text form from r.
//
// Behavior:
//  1. One row per line; a trailing "\r" is stripped from each line.
//  2. Trailing blank lines are ignored; a blank line between rows is not.
//  3. '#' is a wall, '.', 'S' and 'E' are open; anything else fails.
//  4. Exactly one 'S' and one 'E' must be present.
//
// Every returned error satisfies errors.Is(err, ErrMalformedInput), except
// read errors from r which are returned wrapped as-is.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	var start, end Position
	var hasStart, hasEnd bool
	width := len(lines[0])
	cells := make([][]Cell, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, y+1, len(line), width)
		}
		row := make([]Cell, width)
		for x := 0; x < len(line); x++ {
			switch ch := line[x]; ch {
			case SymbolOpen:
				row[x] = Open
			case SymbolWall:
				row[x] = Wall
			case SymbolStart:
				if hasStart {
					return nil, fmt.Errorf("%w: line %d column %d", ErrDuplicateStart, y+1, x+1)
				}
				start, hasStart = Position{Row: y, Col: x}, true
				row[x] = Open
			case SymbolEnd:
				if hasEnd {
					return nil, fmt.Errorf("%w: line %d column %d", ErrDuplicateEnd, y+1, x+1)
				}
				end, hasEnd = Position{Row: y, Col: x}, true
				row[x] = Open
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrInvalidCell, ch, y+1, x+1)
			}
		}
		cells[y] = row
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}

	return New(cells, start, end)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error. Intended for tests
// and package-level fixtures.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return g
}
