package render

import (
	"math"

	"maze-caster/internal/core"

	"github.com/harbdog/raycaster-go/geom"
)

func (r *Renderer) renderTopDown(fb *Framebuffer, pose core.Pose) {
	fb.Clear(BackgroundColor)

	grid := r.caster.Grid()
	bs := int(r.caster.BlockSize())
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			sym := grid.CellAt(row, col)
			if !sym.IsWall() {
				continue
			}
			fillTexture(fb, col*bs, row*bs, bs, r.palette.Texture(sym), CellShade)
		}
	}

	drawSprite(fb, int(pose.Pos.X), int(pose.Pos.Y), PlayerSprite)

	for _, path := range r.TracePaths(pose) {
		for _, p := range path {
			fb.Set(int(p.X), int(p.Y), TraceColor)
		}
	}
}

// TracePaths casts the sparse top-down fan of TraceRays rays and returns the
// sampled points of each.
func (r *Renderer) TracePaths(pose core.Pose) [][]geom.Vector2 {
	n := r.cfg.TraceRays
	paths := make([][]geom.Vector2, 0, n)
	for i := 0; i < n; i++ {
		_, path := r.caster.Trace(pose.Pos, RayAngle(pose, i, n))
		paths = append(paths, path)
	}
	return paths
}

func drawSprite(fb *Framebuffer, cx, cy int, sprite Texture) {
	w, h := sprite.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fb.Set(cx+x-w/2, cy+y-h/2, sprite.At(x, y))
		}
	}
}

const minimapMargin = 10

// renderMinimap draws the plan view in the top-right corner. It is skipped when
// disabled or when it does not fit on screen.
func (r *Renderer) renderMinimap(fb *Framebuffer, pose core.Pose) {
	s := r.cfg.MinimapScale
	grid := r.caster.Grid()
	mw, mh := grid.Cols()*s, grid.Rows()*s
	ox, oy := fb.W-mw-minimapMargin, minimapMargin
	if s <= 0 || ox < 0 || oy+mh > fb.H {
		return
	}

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := MinimapFloor
			if sym := grid.CellAt(row, col); sym.IsWall() {
				c = Shade(r.palette.Texture(sym).Base(), CellShade)
			}
			fb.FillRect(ox+col*s, oy+row*s, s, s, c)
		}
	}

	bs := r.caster.BlockSize()
	toMap := func(wx, wy float64) (int, int) {
		return ox + int(wx/bs*float64(s)), oy + int(wy/bs*float64(s))
	}

	// heading ray, one sample per minimap pixel
	hit := r.caster.Cast(pose.Pos, pose.Heading)
	cos, sin := math.Cos(pose.Heading), math.Sin(pose.Heading)
	stride := bs / float64(s)
	for t := 0.0; t <= hit.Distance; t += stride {
		x, y := toMap(pose.Pos.X+t*cos, pose.Pos.Y+t*sin)
		if x >= ox && x < ox+mw && y >= oy && y < oy+mh {
			fb.Set(x, y, TraceColor)
		}
	}

	px, py := toMap(pose.Pos.X, pose.Pos.Y)
	fb.FillRect(px-1, py-1, 3, 3, MinimapPlayer)
}
