package term

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"maze-caster/internal/core"
	"maze-caster/internal/game"
	"maze-caster/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/harbdog/raycaster-go/geom"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newSession(t *testing.T) *game.Session {
	t.Helper()
	grid := core.MustGrid("#####", "#   #", "#   #", "#   #", "#####")
	cfg := core.DefaultConfig()
	cfg.ScreenWidth, cfg.ScreenHeight = 500, 500
	cfg.Workers = 2
	pose := core.Pose{Pos: geom.Vector2{X: 250, Y: 250}, FOV: math.Pi / 3}
	s, err := game.New(grid, cfg, pose, nil)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return s
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestBlitHalfBlocks(t *testing.T) {
	screen := newScreen(t, 50, 25)
	s := newSession(t)
	s.SetMode(core.FirstPerson)
	if err := s.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	Blit(screen, s.Frame())

	mainc, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if mainc != upperHalf || fg != Color(render.SkyColor) || bg != Color(render.SkyColor) {
		t.Fatalf("top-left cell = %q fg %v bg %v, want sky half block", mainc, fg, bg)
	}
	_, _, style, _ = screen.GetContent(0, 24)
	fg, bg, _ = style.Decompose()
	if fg != Color(render.FloorColor) || bg != Color(render.FloorColor) {
		t.Fatalf("bottom-left cell fg %v bg %v, want floor", fg, bg)
	}
	_, _, style, _ = screen.GetContent(25, 12)
	fg, _, _ = style.Decompose()
	if fg == Color(render.SkyColor) || fg == Color(render.FloorColor) {
		t.Fatalf("centre cell should show the wall, got %v", fg)
	}
}

func TestHandleEvent(t *testing.T) {
	screen := newScreen(t, 40, 20)
	p := New(screen, newSession(t), 60, 4)

	for _, ev := range []tcell.Event{key('w'), key('a'), key(' '), tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)} {
		if !p.HandleEvent(ev) {
			t.Fatalf("event %v should not quit", ev)
		}
	}
	want := game.Input{Forward: true, StrafeLeft: true, ToggleView: true, RotateRight: true}
	if p.pending != want {
		t.Fatalf("pending = %+v, want %+v", p.pending, want)
	}

	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if p.HandleEvent(ev) {
			t.Fatalf("event %v should quit", ev.Name())
		}
	}
}

func TestTickConsumesInput(t *testing.T) {
	screen := newScreen(t, 40, 20)
	s := newSession(t)
	p := New(screen, s, 60, 4)
	if err := p.Fit(); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if s.Frame().W != 160 || s.Frame().H != 160 {
		t.Fatalf("framebuffer %dx%d, want 160x160", s.Frame().W, s.Frame().H)
	}

	before := s.Pose().Pos
	p.HandleEvent(key(' '))
	p.HandleEvent(key('w'))
	if err := p.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Mode() != core.FirstPerson {
		t.Fatalf("mode = %v", s.Mode())
	}
	if s.Pose().Pos == before {
		t.Fatal("forward key did not move the player")
	}
	if p.pending != (game.Input{}) {
		t.Fatalf("pending input not cleared: %+v", p.pending)
	}
	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != 'v' {
		t.Fatalf("status line should start the top row, got %q", mainc)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	screen := newScreen(t, 40, 20)
	p := New(screen, newSession(t), 120, 4)
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 40, 20)
	p := New(screen, newSession(t), 120, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := p.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
}
