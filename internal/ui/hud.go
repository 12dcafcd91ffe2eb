//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
	panelWidth   = 260
)

// HUD renders a translucent stats panel in the top-left corner. H toggles it.
type HUD struct {
	visible bool
	lines   []string
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles the toggle key and caches the text for Draw.
func (h *HUD) Update(s Stats) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.lines = s.Lines()
}

// Draw paints the panel over the frame.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	height := panelPadding*2 + lineHeight*len(h.lines)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelWidth, float64(height))
	op.ColorScale.Scale(0.06, 0.06, 0.08, 0.7)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range h.lines {
		y := panelPadding + lineHeight*(i+1) - 3
		text.Draw(screen, line, face, panelPadding, y, fg)
	}
}
