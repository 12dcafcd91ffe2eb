package render

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"maze-caster/internal/caster"
	"maze-caster/internal/core"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/sync/errgroup"
)

// ErrFrameSize is returned when the framebuffer does not match the configured screen.
var ErrFrameSize = errors.New("framebuffer size does not match screen size")

// minCorrected keeps rays nearly parallel to the view plane from blowing up the wall height.
const minCorrected = 1.0

// Column is the projection of one screen column for one frame.
type Column struct {
	Angle     float64
	Distance  float64
	Corrected float64

	// Height is the unclamped wall height; Top and Bottom are clamped to the screen.
	Height      int
	Top, Bottom int

	Hit    bool
	Symbol core.Symbol
	// U is the horizontal texture coordinate along the struck face.
	U     float64
	Shade float64
	// Color is the shaded texel at the top of the wall segment.
	Color uint32

	texture Texture
}

// Texel returns the shaded wall color at vertical texture coordinate v.
func (c Column) Texel(v float64) uint32 {
	if c.texture == nil {
		return c.Color
	}
	return Shade(c.texture.Sample(c.U, v), c.Shade)
}

// Renderer projects a pose onto a framebuffer. It holds no per-frame state.
type Renderer struct {
	cfg     core.Config
	caster  *caster.Caster
	palette *Palette
	workers int
}

// New returns a renderer casting with c and resolving wall colors from palette.
func New(c *caster.Caster, cfg core.Config, palette *Palette) *Renderer {
	if palette == nil {
		palette = DefaultPalette()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Renderer{cfg: cfg, caster: c, palette: palette, workers: workers}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() core.Config { return r.cfg }

// Caster returns the caster used for rays.
func (r *Renderer) Caster() *caster.Caster { return r.caster }

// Palette returns the wall texture registry.
func (r *Renderer) Palette() *Palette { return r.palette }

// RayAngle maps screen column x to its ray angle. Column 0 is the left edge of
// the field of view.
func RayAngle(pose core.Pose, x, width int) float64 {
	return pose.Heading - pose.FOV/2 + float64(x)/float64(width)*pose.FOV
}

// Correct removes fisheye distortion from a raw ray distance.
func Correct(distance, heading, angle float64) float64 {
	return distance * math.Cos(heading-angle)
}

// Columns projects every screen column for pose. Columns are cast on a bounded
// worker pool; each worker owns a disjoint slice range.
func (r *Renderer) Columns(pose core.Pose) []Column {
	out := make([]Column, r.cfg.ScreenWidth)
	r.parallel(len(out), func(lo, hi int) {
		for x := lo; x < hi; x++ {
			out[x] = r.column(pose, x)
		}
	})
	return out
}

func (r *Renderer) column(pose core.Pose, x int) Column {
	w, h := r.cfg.ScreenWidth, r.cfg.ScreenHeight
	angle := RayAngle(pose, x, w)
	hit := r.caster.Cast(pose.Pos, angle)

	col := Column{Angle: angle, Distance: hit.Distance}
	col.Corrected = math.Max(Correct(hit.Distance, pose.Heading, angle), minCorrected)
	if !hit.OK {
		col.Top, col.Bottom = h/2, h/2-1
		return col
	}

	col.Hit = true
	col.Symbol = hit.Symbol
	col.Height = int(float64(h) * r.wallScale() / col.Corrected)
	col.Top = clampRow(h/2-col.Height/2, h)
	col.Bottom = clampRow(h/2+col.Height/2, h)

	col.texture = r.palette.Texture(hit.Symbol)
	col.U = r.caster.FaceOffset(hit)
	col.Shade = geom.Clamp(r.shadeDistance()/col.Corrected, 0, 1)
	col.Color = Shade(col.texture.Sample(col.U, 0), col.Shade)
	return col
}

func (r *Renderer) wallScale() float64 {
	if r.cfg.WallScale > 0 {
		return r.cfg.WallScale
	}
	return r.caster.BlockSize()
}

func (r *Renderer) shadeDistance() float64 {
	if r.cfg.ShadeDistance > 0 {
		return r.cfg.ShadeDistance
	}
	return r.caster.BlockSize()
}

func clampRow(y, h int) int {
	return int(geom.Clamp(float64(y), 0, float64(h-1)))
}

// Render draws one frame of pose into fb using the given view mode. The frame
// is recomputed from scratch every call.
func (r *Renderer) Render(fb *Framebuffer, pose core.Pose, mode core.ViewMode) error {
	if fb.W != r.cfg.ScreenWidth || fb.H != r.cfg.ScreenHeight {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrFrameSize, fb.W, fb.H, r.cfg.ScreenWidth, r.cfg.ScreenHeight)
	}
	switch mode {
	case core.TopDown:
		r.renderTopDown(fb, pose)
	case core.FirstPerson:
		r.renderFirstPerson(fb, pose)
		r.renderMinimap(fb, pose)
	default:
		return fmt.Errorf("unknown view mode %v", mode)
	}
	return nil
}

func (r *Renderer) renderFirstPerson(fb *Framebuffer, pose core.Pose) {
	h := fb.H
	r.parallel(fb.W, func(lo, hi int) {
		for x := lo; x < hi; x++ {
			col := r.column(pose, x)
			rawTop := h/2 - col.Height/2
			for y := 0; y < h; y++ {
				var c uint32
				switch {
				case y < col.Top:
					c = SkyColor
				case y > col.Bottom:
					c = FloorColor
				default:
					v := 0.0
					if col.Height > 0 {
						v = float64(y-rawTop) / float64(col.Height)
					}
					c = col.Texel(v)
				}
				fb.pix[y*fb.W+x] = c
			}
		}
	})
}

// parallel splits [0, n) into contiguous chunks, one per worker, and waits for all.
func (r *Renderer) parallel(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := min(r.workers, n)
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
