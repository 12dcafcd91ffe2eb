//go:build ebiten

package app

import (
	"log"

	"maze-caster/internal/game"
	"maze-caster/internal/render"
	"maze-caster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	hud     *ui.HUD
	painter *render.Painter

	mouseX    int
	mouseSeen bool
}

// New constructs a Game for the provided session.
func New(s *game.Session) *Game {
	return &Game{session: s, hud: ui.NewHUD(), painter: render.NewPainter()}
}

// Update reads input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	in := game.Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ToggleView:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	x, _ := ebiten.CursorPosition()
	if g.mouseSeen {
		in.LookDX = float64(x - g.mouseX)
	}
	g.mouseX, g.mouseSeen = x, true

	if in.ToggleView {
		log.Printf("view -> %s", g.session.Mode().Toggle())
	}
	if err := g.session.Step(in); err != nil {
		return err
	}
	g.hud.Update(ui.Stats{
		Mode:   g.session.Mode(),
		Pose:   g.session.Pose(),
		Block:  g.session.BlockSize(),
		Frames: g.session.Frames(),
		FPS:    ebiten.ActualFPS(),
		TPS:    ebiten.ActualTPS(),
	})
	return nil
}

// Draw uploads the session framebuffer and overlays the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Frame())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}
