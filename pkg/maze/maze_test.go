package maze

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"maze-caster/internal/core"
)

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader("+#+\r\n# *\r\n+#+\n\n\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("size %dx%d, want 3x3", g.Rows(), g.Cols())
	}
	if g.CellAt(1, 1) != core.Empty || g.CellAt(1, 2) != '*' {
		t.Fatalf("unexpected cells:\n%s", g)
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	_, err := Parse(strings.NewReader("###\n#\n###\n"))
	if !errors.Is(err, core.ErrRaggedGrid) {
		t.Fatalf("expected ErrRaggedGrid, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error should name the line: %v", err)
	}
	if _, err := Parse(strings.NewReader("\n\n")); !errors.Is(err, core.ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestParsePadRows(t *testing.T) {
	g, err := ParseWith(strings.NewReader("#\n###\n##\n"), Options{PadRows: true})
	if err != nil {
		t.Fatalf("ParseWith: %v", err)
	}
	if g.String() != "#  \n###\n## \n" {
		t.Fatalf("padded grid = %q", g.String())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := os.WriteFile(path, []byte("###\n# #\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := Validate(g); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default maze invalid: %v", err)
	}
	if err := Validate(core.MustGrid("###", "   ", "###")); !errors.Is(err, ErrNotEnclosed) {
		t.Fatalf("expected ErrNotEnclosed, got %v", err)
	}
	if err := Validate(core.MustGrid("###", "###")); err == nil {
		t.Fatal("solid maze should be rejected")
	}
	if err := Validate(core.Grid{}); !errors.Is(err, core.ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestFirstEmpty(t *testing.T) {
	row, col, ok := FirstEmpty(Default())
	if !ok || row != 1 || col != 1 {
		t.Fatalf("FirstEmpty = %d,%d,%v", row, col, ok)
	}
}

func reachable(g core.Grid, row, col int) int {
	seen := map[[2]int]bool{{row, col}: true}
	queue := [][2]int{{row, col}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			n := [2]int{cur[0] + d[0], cur[1] + d[1]}
			if !g.InBounds(n[0], n[1]) || g.CellAt(n[0], n[1]).IsWall() || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func TestGenerate(t *testing.T) {
	cfg := GenConfig{Width: 22, Height: 16, Seed: 7, Walls: []core.Symbol{'+', '#', '*'}}
	g := Generate(cfg)

	if g.Cols() != 21 || g.Rows() != 15 {
		t.Fatalf("size %dx%d, want 21x15", g.Cols(), g.Rows())
	}
	if err := Validate(g); err != nil {
		t.Fatalf("generated maze invalid: %v\n%s", err, g)
	}
	for _, sym := range g.Symbols() {
		if !strings.ContainsRune("+#*", rune(sym)) {
			t.Fatalf("unexpected wall symbol %q", sym)
		}
	}

	empty := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.CellAt(r, c).IsWall() {
				empty++
			}
		}
	}
	if got := reachable(g, 1, 1); got != empty {
		t.Fatalf("%d of %d empty cells reachable", got, empty)
	}
	// every odd cell is a room of the spanning tree
	for r := 1; r < g.Rows(); r += 2 {
		for c := 1; c < g.Cols(); c += 2 {
			if g.CellAt(r, c).IsWall() {
				t.Fatalf("room (%d,%d) left closed", r, c)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := GenConfig{Width: 31, Height: 31, Braiding: 0.5, Seed: 99}
	a, b := Generate(cfg), Generate(cfg)
	if a.String() != b.String() {
		t.Fatal("same seed produced different mazes")
	}
	cfg.Seed = 100
	if Generate(cfg).String() == a.String() {
		t.Fatal("different seeds produced the same maze")
	}
}

func TestGenerateBraidingAddsOpenings(t *testing.T) {
	perfect := Generate(GenConfig{Width: 41, Height: 41, Seed: 3})
	braided := Generate(GenConfig{Width: 41, Height: 41, Seed: 3, Braiding: 1})
	count := func(g core.Grid) int {
		n := 0
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				if !g.CellAt(r, c).IsWall() {
					n++
				}
			}
		}
		return n
	}
	if count(braided) <= count(perfect) {
		t.Fatalf("braided maze has %d open cells, perfect has %d", count(braided), count(perfect))
	}
	if !braided.Enclosed() {
		t.Fatal("braiding must not open the border")
	}
}

func TestGenerateClampsTinySizes(t *testing.T) {
	g := Generate(GenConfig{Width: 1, Height: 2})
	if g.Cols() != 5 || g.Rows() != 5 {
		t.Fatalf("size %dx%d, want 5x5", g.Cols(), g.Rows())
	}
}
