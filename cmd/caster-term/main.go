package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"maze-caster/internal/app"
	"maze-caster/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
)

const (
	logDir      = "logs"
	logFileName = "caster-term.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging sends the standard logger to logs/caster-term.log when debug is
// set and discards it otherwise; the terminal belongs to tcell. An oversized
// log is rotated aside with a timestamp suffix.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("caster-term-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	scale := pflag.Int("cell-pixels", 8, "framebuffer pixels per terminal column")
	cfg, err := app.LoadConfig(pflag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	session, err := cfg.NewSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("starting: maze %dx%d, tps %d", session.Grid().Cols(), session.Grid().Rows(), cfg.TPS)
	err = term.New(screen, session, cfg.TPS, *scale).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("exit after %d frames", session.Frames())
}
