// Command framedump renders frames headlessly and writes them as PNG files.
// With --frames N it sweeps the heading through a full turn.
package main

import (
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"maze-caster/internal/app"
	"maze-caster/internal/game"

	"github.com/spf13/pflag"
)

func main() {
	out := pflag.StringP("out", "o", "frames", "output directory")
	frames := pflag.IntP("frames", "n", 1, "frames to render; more than one sweeps a full turn")
	cfg, err := app.LoadConfig(pflag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	session, err := cfg.NewSession()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	paths, err := dump(session, *out, *frames)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	log.Printf("rendered %d frames in %s", len(paths), time.Since(start).Round(time.Millisecond))
}

// dump renders n frames, turning 2π/n between them, and returns the files written.
func dump(s *game.Session, dir string, n int) ([]string, error) {
	n = max(n, 1)
	turn := 2 * math.Pi / float64(n)
	sens := s.Config().MouseSensitivity
	var paths []string
	for i := 0; i < n; i++ {
		var in game.Input
		if i > 0 && sens > 0 {
			in.LookDX = turn / sens
		}
		if err := s.Step(in); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d_%s.png", i, s.Mode()))
		if err := writePNG(path, s); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, s *game.Session) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Frame().Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
