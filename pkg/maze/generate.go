package maze

import "maze-caster/internal/core"

// GenConfig controls maze generation.
type GenConfig struct {
	// Width and Height are rounded down to odd numbers, minimum 5.
	Width, Height int
	// Braiding is the chance in [0, 1] that a dead end is opened into a loop.
	Braiding float64
	// Walls are the symbols painted on wall cells; defaults to '#'.
	Walls []core.Symbol
	Seed  int64
}

type point struct{ x, y int }

// Generate builds an enclosed maze with a recursive backtracker. The same
// config always yields the same maze.
func Generate(cfg GenConfig) core.Grid {
	w, h := oddAtLeast(cfg.Width), oddAtLeast(cfg.Height)
	walls := cfg.Walls
	if len(walls) == 0 {
		walls = []core.Symbol{'#'}
	}
	rng := NewRNG(cfg.Seed)

	open := make([][]bool, h)
	for y := range open {
		open[y] = make([]bool, w)
	}
	carve(open, point{1, 1}, rng)
	if cfg.Braiding > 0 {
		braid(open, cfg.Braiding, rng)
	}

	rows := make([][]core.Symbol, h)
	for y := range rows {
		rows[y] = make([]core.Symbol, w)
		for x := range rows[y] {
			if open[y][x] {
				rows[y][x] = core.Empty
				continue
			}
			rows[y][x] = Pick(rng, walls)
		}
	}
	g, err := core.NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func oddAtLeast(n int) int {
	if n < 5 {
		n = 5
	}
	if n%2 == 0 {
		n--
	}
	return n
}

var jumps = []point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// carve opens a spanning tree of odd cells, never touching the border.
func carve(open [][]bool, start point, rng *RNG) {
	h, w := len(open), len(open[0])
	stack := []point{start}
	open[start.y][start.x] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var next []point
		for _, d := range jumps {
			nx, ny := cur.x+d.x, cur.y+d.y
			if nx > 0 && nx < w-1 && ny > 0 && ny < h-1 && !open[ny][nx] {
				next = append(next, d)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := Pick(rng, next)
		open[cur.y+d.y/2][cur.x+d.x/2] = true
		open[cur.y+d.y][cur.x+d.x] = true
		stack = append(stack, point{cur.x + d.x, cur.y + d.y})
	}
}

// braid knocks through one wall of some dead ends, adding loops.
func braid(open [][]bool, chance float64, rng *RNG) {
	h, w := len(open), len(open[0])
	for y := 1; y < h-1; y += 2 {
		for x := 1; x < w-1; x += 2 {
			exits := 0
			for _, d := range jumps {
				if open[y+d.y/2][x+d.x/2] {
					exits++
				}
			}
			if exits != 1 || !rng.Chance(chance) {
				continue
			}
			var walls []point
			for _, d := range jumps {
				nx, ny := x+d.x, y+d.y
				if nx > 0 && nx < w-1 && ny > 0 && ny < h-1 && !open[y+d.y/2][x+d.x/2] {
					walls = append(walls, point{x + d.x/2, y + d.y/2})
				}
			}
			if len(walls) > 0 {
				p := Pick(rng, walls)
				open[p.y][p.x] = true
			}
		}
	}
}
