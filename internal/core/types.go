package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// ViewMode selects how a frame is projected.
type ViewMode int

const (
	// TopDown draws the grid in plan view with a sparse fan of traced rays.
	TopDown ViewMode = iota
	// FirstPerson draws the perspective-corrected wall view.
	FirstPerson
)

func (m ViewMode) String() string {
	switch m {
	case TopDown:
		return "2D"
	case FirstPerson:
		return "3D"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == FirstPerson {
		return TopDown
	}
	return FirstPerson
}

// Pose is a read-only snapshot of the player used for rendering.
type Pose struct {
	Pos     geom.Vector2
	Heading float64
	FOV     float64
}

// Config carries every render and movement tunable. It is passed explicitly to
// the projector and movement operations.
type Config struct {
	ScreenWidth  int
	ScreenHeight int

	FOV      float64
	StepSize float64

	MoveSpeed        float64
	RotateSpeed      float64
	MouseSensitivity float64

	// MaxDistance stops a march that has not hit anything. Zero disables the cutoff.
	MaxDistance float64
	// WallScale multiplies the projected wall height. Zero or less uses the block size.
	WallScale float64
	// ShadeDistance is the corrected distance at which walls start to darken.
	// Zero or less uses the block size.
	ShadeDistance float64

	TraceRays    int
	MinimapScale int
	Workers      int
}

// DefaultConfig mirrors the classic 1200x600 maze runner setup.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1200,
		ScreenHeight:     600,
		FOV:              math.Pi / 3,
		StepSize:         10,
		MoveSpeed:        10,
		RotateSpeed:      math.Pi / 10,
		MouseSensitivity: 0.005,
		TraceRays:        5,
		MinimapScale:     6,
	}
}

// Validate rejects configurations the projector cannot render.
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight))
	}
	if c.FOV <= 0 || c.FOV >= 2*math.Pi {
		errs = append(errs, fmt.Errorf("fov %.4f must be in (0, 2π)", c.FOV))
	}
	if c.StepSize <= 0 {
		errs = append(errs, fmt.Errorf("step size %.4f must be positive", c.StepSize))
	}
	if c.MaxDistance < 0 {
		errs = append(errs, fmt.Errorf("max distance %.4f must not be negative", c.MaxDistance))
	}
	if c.TraceRays < 0 || c.MinimapScale < 0 || c.Workers < 0 {
		errs = append(errs, errors.New("trace rays, minimap scale and workers must not be negative"))
	}
	return errors.Join(errs...)
}

// BlockSize returns the world-unit edge of one grid cell for the given screen.
// It is min(screenW/cols, screenH/rows) using integer division.
func BlockSize(screenW, screenH int, g Grid) float64 {
	if g.Cols() == 0 || g.Rows() == 0 {
		return 0
	}
	return float64(min(screenW/g.Cols(), screenH/g.Rows()))
}

// CellOf maps a world coordinate to a grid index.
func CellOf(coord, blockSize float64) int {
	return int(math.Floor(coord / blockSize))
}
