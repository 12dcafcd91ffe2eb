// Package term presents a session on a character terminal. Each cell shows two
// framebuffer samples using the upper half block glyph.
package term

import (
	"context"
	"log"
	"strings"
	"time"

	"maze-caster/internal/core"
	"maze-caster/internal/game"
	"maze-caster/internal/render"
	"maze-caster/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const upperHalf = '▀'

// Presenter drives a session from terminal events.
type Presenter struct {
	screen  tcell.Screen
	session *game.Session
	scale   int
	clock   *core.FixedStep
	pending game.Input
	status  bool
}

// New wraps an initialised screen. Scale is the number of framebuffer pixels
// rendered per terminal column.
func New(screen tcell.Screen, s *game.Session, tps, scale int) *Presenter {
	if scale <= 0 {
		scale = 8
	}
	return &Presenter{
		screen:  screen,
		session: s,
		scale:   scale,
		clock:   core.NewFixedStep(tps),
		status:  true,
	}
}

// Fit resizes the session framebuffer to the terminal.
func (p *Presenter) Fit() error {
	w, h := p.screen.Size()
	return p.session.Resize(w*p.scale, h*2*p.scale)
}

// HandleEvent folds one event into the input for the next tick. It reports
// false when the user asked to quit.
func (p *Presenter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
		if err := p.Fit(); err != nil {
			log.Printf("resize: %v", err)
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			p.pending.Forward = true
		case tcell.KeyDown:
			p.pending.Backward = true
		case tcell.KeyLeft:
			p.pending.RotateLeft = true
		case tcell.KeyRight:
			p.pending.RotateRight = true
		case tcell.KeyRune:
			return p.handleRune(ev.Rune())
		}
	}
	return true
}

func (p *Presenter) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 'w', 'W':
		p.pending.Forward = true
	case 's', 'S':
		p.pending.Backward = true
	case 'a', 'A':
		p.pending.StrafeLeft = true
	case 'd', 'D':
		p.pending.StrafeRight = true
	case 'h', ',':
		p.pending.RotateLeft = true
	case 'l', '.':
		p.pending.RotateRight = true
	case ' ':
		p.pending.ToggleView = true
	case 'i':
		p.status = !p.status
	}
	return true
}

// Tick applies the pending input, renders and shows the frame.
func (p *Presenter) Tick() error {
	in := p.pending
	p.pending = game.Input{}
	if err := p.session.Step(in); err != nil {
		return err
	}
	Blit(p.screen, p.session.Frame())
	if p.status {
		p.drawStatus()
	}
	p.screen.Show()
	return nil
}

func (p *Presenter) drawStatus() {
	lines := ui.Stats{
		Mode:   p.session.Mode(),
		Pose:   p.session.Pose(),
		Block:  p.session.BlockSize(),
		Frames: p.session.Frames(),
	}.Lines()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	w, _ := p.screen.Size()
	line := []rune(strings.Join(lines[:3], " | "))
	for x := 0; x < w && x < len(line); x++ {
		p.screen.SetContent(x, 0, line[x], nil, style)
	}
}

// Run processes events and renders at the configured rate until the user quits
// or ctx is done. It returns ctx.Err() in the latter case.
func (p *Presenter) Run(ctx context.Context) error {
	if err := p.Fit(); err != nil {
		return err
	}
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !p.HandleEvent(ev) {
				return nil
			}
		case <-timer.C:
			if p.clock.ShouldStep() {
				if err := p.Tick(); err != nil {
					return err
				}
			}
			timer.Reset(max(p.clock.Remaining(), time.Millisecond))
		}
	}
}

// Blit draws fb over the whole screen, sampling the centre of the pixel band
// behind each half cell.
func Blit(screen tcell.Screen, fb *render.Framebuffer) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 || fb.W == 0 || fb.H == 0 {
		return
	}
	for cy := 0; cy < rows; cy++ {
		top := (4*cy + 1) * fb.H / (4 * rows)
		bottom := (4*cy + 3) * fb.H / (4 * rows)
		for cx := 0; cx < cols; cx++ {
			x := (2*cx + 1) * fb.W / (2 * cols)
			style := tcell.StyleDefault.
				Foreground(Color(fb.At(x, top))).
				Background(Color(fb.At(x, bottom)))
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

// Color converts a packed 0xRRGGBB pixel to a true-colour terminal colour.
func Color(c uint32) tcell.Color {
	return tcell.NewHexColor(int32(c & 0xFFFFFF))
}
