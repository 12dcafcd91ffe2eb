package player

import (
	"math"

	"maze-caster/internal/core"

	"github.com/harbdog/raycaster-go/geom"
)

// Collider answers whether a world position is solid.
type Collider interface {
	IsBlocked(x, y float64) bool
}

// Player is the viewer's pose. Fields are only changed through the movement
// and rotation methods.
type Player struct {
	pos     geom.Vector2
	heading float64
	fov     float64
}

// New places a player at pos looking along heading with the given field of view.
func New(pos geom.Vector2, heading, fov float64) *Player {
	return &Player{pos: pos, heading: heading, fov: fov}
}

// FromPose creates a player from a pose snapshot.
func FromPose(p core.Pose) *Player {
	return New(p.Pos, p.Heading, p.FOV)
}

// Position returns the world position.
func (p *Player) Position() geom.Vector2 { return p.pos }

// Heading returns the accumulated view angle in radians. It is not normalised.
func (p *Player) Heading() float64 { return p.heading }

// FOV returns the field of view in radians.
func (p *Player) FOV() float64 { return p.fov }

// Pose returns a snapshot for rendering.
func (p *Player) Pose() core.Pose {
	return core.Pose{Pos: p.pos, Heading: p.heading, FOV: p.fov}
}

// MoveForward steps along the heading. It reports whether the move happened.
func (p *Player) MoveForward(c Collider, speed float64) bool {
	return p.try(c, math.Cos(p.heading)*speed, math.Sin(p.heading)*speed)
}

// MoveBackward steps against the heading.
func (p *Player) MoveBackward(c Collider, speed float64) bool {
	return p.try(c, -math.Cos(p.heading)*speed, -math.Sin(p.heading)*speed)
}

// StrafeLeft steps perpendicular to the heading, to the viewer's left.
func (p *Player) StrafeLeft(c Collider, speed float64) bool {
	a := p.heading + math.Pi/2
	return p.try(c, -math.Cos(a)*speed, -math.Sin(a)*speed)
}

// StrafeRight steps perpendicular to the heading, to the viewer's right.
func (p *Player) StrafeRight(c Collider, speed float64) bool {
	a := p.heading + math.Pi/2
	return p.try(c, math.Cos(a)*speed, math.Sin(a)*speed)
}

// RotateLeft turns counter to increasing angle.
func (p *Player) RotateLeft(step float64) { p.heading -= step }

// RotateRight turns towards increasing angle.
func (p *Player) RotateRight(step float64) { p.heading += step }

// Look applies a horizontal pointer delta.
func (p *Player) Look(dx, sensitivity float64) { p.heading += dx * sensitivity }

// try checks the candidate before committing it; a blocked candidate is dropped
// whole, without sliding along the wall.
func (p *Player) try(c Collider, dx, dy float64) bool {
	next := geom.Vector2{X: p.pos.X + dx, Y: p.pos.Y + dy}
	if c.IsBlocked(next.X, next.Y) {
		return false
	}
	p.pos = next
	return true
}
