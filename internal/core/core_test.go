package core

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"
)

func TestNewGridRejectsMalformedInput(t *testing.T) {
	if _, err := NewGrid(nil); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid, got %v", err)
	}
	if _, err := NewGrid([][]Symbol{{}}); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid for zero-width row, got %v", err)
	}
	_, err := NewGrid([][]Symbol{[]Symbol("###"), []Symbol("# ")})
	if !errors.Is(err, ErrRaggedGrid) {
		t.Fatalf("expected ErrRaggedGrid, got %v", err)
	}
}

func TestGridCopiesRows(t *testing.T) {
	rows := [][]Symbol{[]Symbol("##"), []Symbol("# ")}
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	rows[1][1] = '#'
	if got := g.CellAt(1, 1); got != Empty {
		t.Fatalf("grid must not alias input rows, got %q", got)
	}
}

func TestCellAtAndBounds(t *testing.T) {
	g := MustGrid(
		"+#*",
		"+ *",
		"+#*",
	)
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("unexpected size %dx%d", g.Rows(), g.Cols())
	}
	if got := g.CellAt(0, 1); got != '#' {
		t.Fatalf("CellAt(0,1) = %q", got)
	}
	if got := g.CellAt(1, 1); got != Empty || got.IsWall() {
		t.Fatalf("centre cell should be empty, got %q", got)
	}
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if g.InBounds(idx[0], idx[1]) {
			t.Fatalf("(%d,%d) should be out of bounds", idx[0], idx[1])
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatal("CellAt out of range should panic")
		}
	}()
	g.CellAt(3, 0)
}

func TestEnclosed(t *testing.T) {
	if !MustGrid("###", "# #", "###").Enclosed() {
		t.Fatal("bordered grid should be enclosed")
	}
	if MustGrid("###", "   ", "###").Enclosed() {
		t.Fatal("grid with open sides should not be enclosed")
	}
}

func TestSymbolsAndString(t *testing.T) {
	g := MustGrid("+#+", "* *", "+#+")
	if got, want := g.Symbols(), []Symbol{'+', '#', '*'}; !slices.Equal(got, want) {
		t.Fatalf("Symbols() = %q, want %q", got, want)
	}
	if got := g.String(); got != "+#+\n* *\n+#+\n" {
		t.Fatalf("String() = %q", got)
	}
}

func TestBlockSize(t *testing.T) {
	g := MustGrid("#####", "#   #", "#   #", "#   #", "#####")
	if got := BlockSize(500, 500, g); got != 100 {
		t.Fatalf("BlockSize = %f, want 100", got)
	}
	// integer division on the limiting axis
	if got := BlockSize(1200, 600, g); got != 120 {
		t.Fatalf("BlockSize = %f, want 120", got)
	}
	if got := BlockSize(100, 100, Grid{}); got != 0 {
		t.Fatalf("BlockSize of empty grid = %f", got)
	}
}

func TestCellOfFloorsNegatives(t *testing.T) {
	cases := []struct {
		coord float64
		want  int
	}{
		{0, 0}, {99.9, 0}, {100, 1}, {-0.1, -1}, {-100, -1}, {-100.5, -2},
	}
	for _, c := range cases {
		if got := CellOf(c.coord, 100); got != c.want {
			t.Fatalf("CellOf(%f) = %d, want %d", c.coord, got, c.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg := DefaultConfig()
	cfg.ScreenWidth = 0
	cfg.FOV = 7
	cfg.StepSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestViewModeToggle(t *testing.T) {
	if TopDown.Toggle() != FirstPerson || FirstPerson.Toggle() != TopDown {
		t.Fatal("Toggle should alternate between view modes")
	}
	if TopDown.String() != "2D" || FirstPerson.String() != "3D" {
		t.Fatal("unexpected view mode names")
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.accumulator = 0

	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("step = %v", fs.Step())
	}
	if fs.ShouldStep() {
		t.Fatal("no time has passed yet")
	}
	clock = clock.Add(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("frame due too early")
	}
	if got := fs.Remaining(); got != 60*time.Millisecond {
		t.Fatalf("Remaining = %v", got)
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("frame should be due")
	}
	// a long stall yields at most one catch-up frame
	clock = clock.Add(time.Second)
	if !fs.ShouldStep() || !fs.ShouldStep() || fs.ShouldStep() {
		t.Fatal("backlog should be capped at one extra frame")
	}
	if math.Abs(float64(fs.Remaining())) > float64(fs.Step()) {
		t.Fatal("remaining out of range")
	}
}
