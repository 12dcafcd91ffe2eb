// Package maze loads, validates and generates character-grid mazes.
package maze

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"maze-caster/internal/core"
)

// ErrNotEnclosed is returned when a border cell of the maze is empty.
var ErrNotEnclosed = errors.New("maze border is not fully walled")

//go:embed default.txt
var defaultMaze string

// Options tunes Parse.
type Options struct {
	// PadRows right-pads short rows with empty cells instead of rejecting them.
	PadRows bool
}

// Parse reads one row per line and one cell per rune. Ragged rows are rejected.
func Parse(r io.Reader) (core.Grid, error) {
	return ParseWith(r, Options{})
}

// ParseWith reads a maze using opts.
func ParseWith(r io.Reader, opts Options) (core.Grid, error) {
	var rows [][]core.Symbol
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, []core.Symbol(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return core.Grid{}, fmt.Errorf("read maze: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return core.Grid{}, core.ErrEmptyGrid
	}

	width := len(rows[0])
	if opts.PadRows {
		for _, row := range rows {
			width = max(width, len(row))
		}
	}
	for i, row := range rows {
		switch {
		case len(row) == width:
		case opts.PadRows:
			for len(row) < width {
				row = append(row, core.Empty)
			}
			rows[i] = row
		default:
			return core.Grid{}, fmt.Errorf("line %d has %d cells, want %d: %w", i+1, len(row), width, core.ErrRaggedGrid)
		}
	}
	return core.NewGrid(rows)
}

// Load parses the maze file at path.
func Load(path string) (core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Grid{}, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return core.Grid{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Default returns the embedded maze.
func Default() core.Grid {
	g, err := Parse(strings.NewReader(defaultMaze))
	if err != nil {
		panic(err)
	}
	return g
}

// Validate checks the preconditions the renderer relies on: a rectangular grid
// whose border is entirely walls and which has somewhere to stand.
func Validate(g core.Grid) error {
	if g.Rows() == 0 || g.Cols() == 0 {
		return core.ErrEmptyGrid
	}
	if !g.Enclosed() {
		return ErrNotEnclosed
	}
	if _, _, ok := FirstEmpty(g); !ok {
		return errors.New("maze has no empty cell")
	}
	return nil
}

// FirstEmpty returns the first empty cell scanning row-major.
func FirstEmpty(g core.Grid) (row, col int, ok bool) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.CellAt(r, c).IsWall() {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
