package manhattan

import (
	"fmt"
	"math"
	"strings"
)

// Grid is a fixed-size binary pixel grid stored row-major.
// Build it with NewGrid or From2D; Rows and Cols are read-only after that.
// Accessors check coordinates against the backing storage as well, so a
// hand-built or reshaped Grid reports cells as out of bounds instead of
// panicking.
type Grid struct {
	Rows, Cols int
	cells      []uint8
}

// NewGrid returns an all-off grid of the given dimensions.
// Returns ErrEmptyGrid if either dimension is not positive and
// ErrGridTooLarge if rows×cols does not fit in an int.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	if cols > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, rows, cols)
	}

	return &Grid{Rows: rows, Cols: cols, cells: make([]uint8, rows*cols)}, nil
}

// From2D copies a non-empty rectangular [][]int into a new Grid.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrCellValue.
// Complexity: O(R×C).
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g, err := NewGrid(len(values), len(values[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), g.Cols)
		}
		for c, v := range row {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrCellValue, r, c, v)
			}
			g.cells[g.index(r, c)] = uint8(v)
		}
	}

	return g, nil
}

// MustFrom2D is like From2D but panics on error. Intended for literals.
func MustFrom2D(values [][]int) *Grid {
	g, err := From2D(values)
	if err != nil {
		panic(err)
	}

	return g
}

// InBounds reports whether (row, col) lies within the grid and its storage.
func (g *Grid) InBounds(row, col int) bool {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return false
	}
	i := g.index(row, col)

	return i >= 0 && i < len(g.cells)
}

// At returns the value at (row, col). ok is false when out of bounds.
func (g *Grid) At(row, col int) (v uint8, ok bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}

	return g.cells[g.index(row, col)], true
}

// Set stores v at (row, col) and reports whether the cell exists.
func (g *Grid) Set(row, col int, v uint8) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[g.index(row, col)] = v

	return true
}

// On returns the coordinates of every cell equal to On, in row-major order.
func (g *Grid) On() []Coord {
	var out []Coord
	if g.Cols <= 0 {
		return out
	}
	for i, v := range g.cells {
		if v == On {
			out = append(out, Coord{Row: i / g.Cols, Col: i % g.Cols})
		}
	}

	return out
}

// Count returns the number of cells equal to On.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v == On {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.cells))
	copy(cells, g.cells)

	return &Grid{Rows: g.Rows, Cols: g.Cols, cells: cells}
}

// Equal reports whether g and other have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Rows != other.Rows || g.Cols != other.Cols || len(g.cells) != len(other.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Covers reports whether every On cell of other is also On in g.
// Grids of different shape never cover each other; a nil grid only
// covers another nil grid.
func (g *Grid) Covers(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Rows != other.Rows || g.Cols != other.Cols || len(g.cells) != len(other.cells) {
		return false
	}
	for i, v := range other.cells {
		if v == On && g.cells[i] != On {
			return false
		}
	}

	return true
}

// ToSlice returns the grid as a fresh [][]int.
func (g *Grid) ToSlice() [][]int {
	out := make([][]int, g.Rows)
	for r := range out {
		out[r] = make([]int, g.Cols)
		for c := range out[r] {
			v, _ := g.At(r, c)
			out[r][c] = int(v)
		}
	}

	return out
}

// String renders one line per row with space-separated values.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v, _ := g.At(r, c)
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (row, col) to a row-major offset. Callers check bounds first.
func (g *Grid) index(row, col int) int {
	return row*g.Cols + col
}
