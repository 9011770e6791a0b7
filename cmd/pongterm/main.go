package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vishal929/OpenGLPong/game"
	"github.com/vishal929/OpenGLPong/menu"
	"github.com/vishal929/OpenGLPong/term"
)

func main() {
	ballSpeed := flag.Float64("ball-speed", game.DefaultBallSpeed, "ball speed multiplier (0-10)")
	barSpeed := flag.Float64("bar-speed", game.DefaultBarSpeed, "paddle speed multiplier (0-10)")
	maxScore := flag.Int("max-score", game.DefaultMaxScore, "points needed to win (1-20)")
	seed := flag.Int64("seed", 0, "seed the serve directions (0 seeds from the clock)")
	showMenu := flag.Bool("menu", true, "show the settings menu before playing")
	sound := flag.Bool("sound", true, "play sound effects")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	settings := game.Settings{BallSpeed: *ballSpeed, BarSpeed: *barSpeed, MaxScore: *maxScore}
	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(settings, *seed, *showMenu, *sound, logger); err != nil {
		logger.Error("pongterm failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

// openLogger writes to path, or nowhere when path is empty. The terminal owns
// stdout and stderr while a match runs.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func run(settings game.Settings, seed int64, showMenu, sound bool, logger *slog.Logger) error {
	if showMenu {
		chosen, play, err := menu.Run(settings)
		if err != nil {
			return err
		}
		if !play {
			return nil
		}
		settings = chosen
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.NewGame(rand.New(rand.NewSource(seed)))
	g.Apply(settings)
	g.ResetGame(true)
	logger.Info("match starting", "settings", settings, "seed", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	sounds := term.NewSounds(sound, logger)
	defer sounds.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := term.NewApp(screen, g, term.Options{Sounds: sounds, Logger: logger})
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
