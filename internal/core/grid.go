package core

import "errors"

// Symbol is a single maze cell. Symbols compare by equality only.
type Symbol rune

// Empty is the passable cell. Every other symbol is a wall.
const Empty Symbol = ' '

var (
	// ErrEmptyGrid is returned for a grid without rows or columns.
	ErrEmptyGrid = errors.New("grid has no cells")
	// ErrRaggedGrid is returned when rows differ in length.
	ErrRaggedGrid = errors.New("grid rows differ in length")
)

// IsWall reports whether the symbol blocks movement and rays.
func (s Symbol) IsWall() bool { return s != Empty }

// Grid stores an immutable rectangular maze in row-major order.
type Grid struct {
	rows, cols int
	data       []Symbol
}

// NewGrid copies rows into a Grid. Every row must have the same, non-zero length.
func NewGrid(rows [][]Symbol) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	cols := len(rows[0])
	data := make([]Symbol, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return Grid{}, ErrRaggedGrid
		}
		data = append(data, row...)
	}
	return Grid{rows: len(rows), cols: cols, data: data}, nil
}

// MustGrid builds a grid from strings, one per row, and panics on malformed input.
// It is meant for fixtures and embedded mazes.
func MustGrid(lines ...string) Grid {
	rows := make([][]Symbol, len(lines))
	for i, line := range lines {
		rows[i] = []Symbol(line)
	}
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns the symbol at (row, col). Indices must satisfy InBounds.
func (g Grid) CellAt(row, col int) Symbol {
	if !g.InBounds(row, col) {
		panic("core: CellAt index out of range")
	}
	return g.data[row*g.cols+col]
}

// Enclosed reports whether every border cell is a wall.
func (g Grid) Enclosed() bool {
	if g.rows == 0 {
		return false
	}
	for c := 0; c < g.cols; c++ {
		if !g.CellAt(0, c).IsWall() || !g.CellAt(g.rows-1, c).IsWall() {
			return false
		}
	}
	for r := 0; r < g.rows; r++ {
		if !g.CellAt(r, 0).IsWall() || !g.CellAt(r, g.cols-1).IsWall() {
			return false
		}
	}
	return true
}

// Symbols returns the distinct wall symbols in first-seen row-major order.
func (g Grid) Symbols() []Symbol {
	seen := make(map[Symbol]bool)
	var out []Symbol
	for _, s := range g.data {
		if s.IsWall() && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// String renders the grid back to its text form.
func (g Grid) String() string {
	buf := make([]rune, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf = append(buf, rune(g.data[r*g.cols+c]))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
