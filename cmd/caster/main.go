//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"maze-caster/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := app.LoadConfig(pflag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	session, err := cfg.NewSession()
	if err != nil {
		log.Fatal(err)
	}
	rc := session.Config()
	grid := session.Grid()
	log.Printf("maze %dx%d, block %.0f, view %s", grid.Cols(), grid.Rows(), session.BlockSize(), session.Mode())

	ebiten.SetWindowTitle("maze-caster")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(rc.ScreenWidth, rc.ScreenHeight)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(app.New(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
