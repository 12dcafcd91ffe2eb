// Package game runs the per-frame pipeline: input, player movement, projection.
package game

import (
	"fmt"
	"math"

	"maze-caster/internal/caster"
	"maze-caster/internal/core"
	"maze-caster/internal/player"
	"maze-caster/internal/render"
	"maze-caster/pkg/maze"

	"github.com/harbdog/raycaster-go/geom"
)

// Input is one frame of player intent. Movement and rotation flags are held
// keys; ToggleView is edge-triggered by the presenter.
type Input struct {
	Forward, Backward       bool
	StrafeLeft, StrafeRight bool
	RotateLeft, RotateRight bool
	ToggleView              bool
	// LookDX is the horizontal pointer delta since the previous frame.
	LookDX float64
}

// Session owns the grid, player, renderer and framebuffer. It is driven by a
// single goroutine.
type Session struct {
	grid     core.Grid
	cfg      core.Config
	palette  *render.Palette
	caster   *caster.Caster
	renderer *render.Renderer
	player   *player.Player
	fb       *render.Framebuffer
	mode     core.ViewMode
	frames   int
}

// New builds a session. The grid must be rectangular and fully enclosed.
func New(grid core.Grid, cfg core.Config, start core.Pose, palette *render.Palette) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := maze.Validate(grid); err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	if core.BlockSize(cfg.ScreenWidth, cfg.ScreenHeight, grid) == 0 {
		return nil, fmt.Errorf("screen %dx%d too small for a %dx%d maze", cfg.ScreenWidth, cfg.ScreenHeight, grid.Cols(), grid.Rows())
	}
	if palette == nil {
		palette = render.DefaultPalette()
	}
	s := &Session{
		grid:    grid,
		cfg:     cfg,
		palette: palette,
		player:  player.FromPose(start),
		mode:    core.TopDown,
	}
	s.rebuild()
	return s, nil
}

// StartPose centres the player in the first empty cell, looking along π/3.
func StartPose(grid core.Grid, cfg core.Config) core.Pose {
	bs := core.BlockSize(cfg.ScreenWidth, cfg.ScreenHeight, grid)
	row, col, _ := maze.FirstEmpty(grid)
	return core.Pose{
		Pos:     geom.Vector2{X: (float64(col) + 0.5) * bs, Y: (float64(row) + 0.5) * bs},
		Heading: math.Pi / 3,
		FOV:     cfg.FOV,
	}
}

func (s *Session) rebuild() {
	s.caster = caster.FromConfig(s.grid, s.cfg)
	s.renderer = render.New(s.caster, s.cfg, s.palette)
	s.fb = render.NewFramebuffer(s.cfg.ScreenWidth, s.cfg.ScreenHeight)
}

// Resize changes the screen size and recomputes the block size. The player is
// rescaled with the grid so it keeps its place in the maze.
func (s *Session) Resize(w, h int) error {
	cfg := s.cfg
	cfg.ScreenWidth, cfg.ScreenHeight = w, h
	if err := cfg.Validate(); err != nil {
		return err
	}
	bs := core.BlockSize(w, h, s.grid)
	if bs == 0 {
		return fmt.Errorf("screen %dx%d too small for the maze", w, h)
	}
	if old := s.caster.BlockSize(); old != bs {
		pose := s.player.Pose()
		pose.Pos = geom.Vector2{X: rescale(pose.Pos.X, old, bs), Y: rescale(pose.Pos.Y, old, bs)}
		s.player = player.FromPose(pose)
	}
	s.cfg = cfg
	s.rebuild()
	return nil
}

// rescale maps a world coordinate between block sizes through its cell-relative
// position, then pins it inside the original cell if rounding pushed it across
// an edge.
func rescale(v, oldBS, newBS float64) float64 {
	cell := core.CellOf(v, oldBS)
	p := v / oldBS * newBS
	switch c := core.CellOf(p, newBS); {
	case c < cell:
		p = float64(cell) * newBS
	case c > cell:
		p = math.Nextafter(float64(cell+1)*newBS, math.Inf(-1))
	}
	return p
}

// Step applies one frame of input and renders the result into the framebuffer.
func (s *Session) Step(in Input) error {
	s.Apply(in)
	return s.Draw()
}

// Apply mutates the player from input without rendering.
func (s *Session) Apply(in Input) {
	if in.ToggleView {
		s.mode = s.mode.Toggle()
	}
	speed := s.cfg.MoveSpeed
	switch {
	case in.Forward && !in.Backward:
		s.player.MoveForward(s.caster, speed)
	case in.Backward && !in.Forward:
		s.player.MoveBackward(s.caster, speed)
	}
	switch {
	case in.StrafeLeft && !in.StrafeRight:
		s.player.StrafeLeft(s.caster, speed)
	case in.StrafeRight && !in.StrafeLeft:
		s.player.StrafeRight(s.caster, speed)
	}
	if in.RotateLeft {
		s.player.RotateLeft(s.cfg.RotateSpeed)
	}
	if in.RotateRight {
		s.player.RotateRight(s.cfg.RotateSpeed)
	}
	if in.LookDX != 0 {
		s.player.Look(in.LookDX, s.cfg.MouseSensitivity)
	}
}

// Draw renders the current pose in the current mode.
func (s *Session) Draw() error {
	if err := s.renderer.Render(s.fb, s.player.Pose(), s.mode); err != nil {
		return err
	}
	s.frames++
	return nil
}

// Frame returns the framebuffer of the last Draw.
func (s *Session) Frame() *render.Framebuffer { return s.fb }

// Pose returns the current player pose.
func (s *Session) Pose() core.Pose { return s.player.Pose() }

// Mode returns the active view mode.
func (s *Session) Mode() core.ViewMode { return s.mode }

// SetMode forces a view mode.
func (s *Session) SetMode(m core.ViewMode) { s.mode = m }

// Config returns the active configuration.
func (s *Session) Config() core.Config { return s.cfg }

// Grid returns the maze.
func (s *Session) Grid() core.Grid { return s.grid }

// BlockSize returns the current world-unit cell size.
func (s *Session) BlockSize() float64 { return s.caster.BlockSize() }

// Frames returns how many frames have been drawn.
func (s *Session) Frames() int { return s.frames }
