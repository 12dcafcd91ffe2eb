// Package caster marches rays through a maze grid and answers collision queries.
package caster

import (
	"math"

	"maze-caster/internal/core"

	"github.com/harbdog/raycaster-go/geom"
)

// Hit is the result of a single ray cast. It is not kept across frames.
type Hit struct {
	// Distance is measured along the ray, not perpendicular to the wall.
	Distance float64
	Angle    float64
	Point    geom.Vector2
	Row, Col int
	Symbol   core.Symbol
	// Outside is set when the ray left the grid and the exterior was treated as a wall.
	Outside bool
	// OK is false when the march reached MaxDistance without hitting anything.
	OK bool
}

// Caster maps world coordinates onto a grid. It holds no per-frame state and
// is safe for concurrent reads.
type Caster struct {
	grid        core.Grid
	blockSize   float64
	step        float64
	maxDistance float64
}

// New returns a caster over grid. A non-positive blockSize or step falls back
// to 1 world unit so the march always advances; callers building from a
// core.Config get those values checked by Config.Validate first. maxDistance of
// zero disables the no-hit cutoff.
func New(grid core.Grid, blockSize, step, maxDistance float64) *Caster {
	if blockSize <= 0 {
		blockSize = 1
	}
	if step <= 0 {
		step = 1
	}
	return &Caster{grid: grid, blockSize: blockSize, step: step, maxDistance: maxDistance}
}

// FromConfig builds a caster sized for the configured screen.
func FromConfig(grid core.Grid, cfg core.Config) *Caster {
	return New(grid, core.BlockSize(cfg.ScreenWidth, cfg.ScreenHeight, grid), cfg.StepSize, cfg.MaxDistance)
}

// Grid returns the grid being cast against.
func (c *Caster) Grid() core.Grid { return c.grid }

// BlockSize returns the world-unit edge of one cell.
func (c *Caster) BlockSize() float64 { return c.blockSize }

// StepSize returns the march increment.
func (c *Caster) StepSize() float64 { return c.step }

// Cell returns the grid indices containing the world point.
func (c *Caster) Cell(x, y float64) (row, col int) {
	return core.CellOf(y, c.blockSize), core.CellOf(x, c.blockSize)
}

// IsBlocked reports whether the world point lies in a wall. Points outside the
// grid are blocked.
func (c *Caster) IsBlocked(x, y float64) bool {
	row, col := c.Cell(x, y)
	if !c.grid.InBounds(row, col) {
		return true
	}
	return c.grid.CellAt(row, col).IsWall()
}

// Cast marches from origin along angle until it enters a wall cell.
func (c *Caster) Cast(origin geom.Vector2, angle float64) Hit {
	return c.march(origin, angle, nil)
}

// Trace is Cast that also returns every sampled point that was not a hit, in
// march order, for path visualisation.
func (c *Caster) Trace(origin geom.Vector2, angle float64) (Hit, []geom.Vector2) {
	var path []geom.Vector2
	hit := c.march(origin, angle, &path)
	return hit, path
}

func (c *Caster) march(origin geom.Vector2, angle float64, path *[]geom.Vector2) Hit {
	cos, sin := math.Cos(angle), math.Sin(angle)
	for i := 0; ; i++ {
		// multiply rather than accumulate so multiples of step stay exact
		d := float64(i) * c.step
		if c.maxDistance > 0 && d > c.maxDistance {
			return Hit{Distance: c.maxDistance, Angle: angle, Row: -1, Col: -1}
		}
		p := geom.Vector2{X: origin.X + d*cos, Y: origin.Y + d*sin}
		row, col := c.Cell(p.X, p.Y)
		if !c.grid.InBounds(row, col) {
			return Hit{Distance: d, Angle: angle, Point: p, Row: row, Col: col, Outside: true, OK: true}
		}
		if sym := c.grid.CellAt(row, col); sym.IsWall() {
			return Hit{Distance: d, Angle: angle, Point: p, Row: row, Col: col, Symbol: sym, OK: true}
		}
		if path != nil {
			*path = append(*path, p)
		}
	}
}

// FaceOffset returns where along the struck cell face the hit landed, in [0, 1).
// The face is the cell edge nearest to the hit point.
func (c *Caster) FaceOffset(h Hit) float64 {
	if !h.OK {
		return 0
	}
	fx := frac(h.Point.X / c.blockSize)
	fy := frac(h.Point.Y / c.blockSize)
	// distance to the nearest vertical edge vs nearest horizontal edge
	dx := math.Min(fx, 1-fx)
	dy := math.Min(fy, 1-fy)
	if dx < dy {
		return fy
	}
	return fx
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}
