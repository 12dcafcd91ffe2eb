// Package ui formats and draws the heads-up display.
package ui

import (
	"fmt"
	"math"

	"maze-caster/internal/core"
)

// Stats is what the HUD shows for one frame.
type Stats struct {
	Mode   core.ViewMode
	Pose   core.Pose
	Block  float64
	Frames int
	FPS    float64
	TPS    float64
}

// Lines renders the stats as display rows, top to bottom.
func (s Stats) Lines() []string {
	row, col := -1, -1
	if s.Block > 0 {
		row, col = core.CellOf(s.Pose.Pos.Y, s.Block), core.CellOf(s.Pose.Pos.X, s.Block)
	}
	return []string{
		fmt.Sprintf("view %s  [space] toggle", s.Mode),
		fmt.Sprintf("pos %.1f,%.1f  cell %d,%d", s.Pose.Pos.X, s.Pose.Pos.Y, row, col),
		fmt.Sprintf("heading %.1f°", Degrees(s.Pose.Heading)),
		fmt.Sprintf("fps %.0f  tps %.0f  frame %d", s.FPS, s.TPS, s.Frames),
	}
}

// Degrees normalises a heading into [0, 360).
func Degrees(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}
