// Package term renders a match in a terminal with tcell and feeds keyboard
// input back into the engine.
package term

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vishal929/OpenGLPong/game"
)

const (
	DefaultFrameInterval = 16 * time.Millisecond // ~60 FPS

	maxFrameDelta = 0.1

	minWidth  = 20
	minHeight = 8
)

var (
	fieldStyle  = tcell.StyleDefault
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	aiStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

type Options struct {
	FrameInterval time.Duration
	Hold          time.Duration
	Sounds        *Sounds
	Logger        *slog.Logger
}

// App owns the screen and one Game for the duration of a terminal session.
type App struct {
	screen tcell.Screen
	game   *game.Game
	keys   *KeyState
	sounds *Sounds
	logger *slog.Logger

	frameInterval time.Duration
	paused        bool
}

func NewApp(screen tcell.Screen, g *game.Game, opts Options) *App {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		screen:        screen,
		game:          g,
		keys:          NewKeyState(opts.Hold),
		sounds:        opts.Sounds,
		logger:        opts.Logger,
		frameInterval: opts.FrameInterval,
	}
}

// Run drives frames until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.handleEvent(ev, time.Now()) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			a.frame(now, dt)
			a.draw()
		}
	}
}

// handleEvent returns false when the player asked to quit.
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.keys.Press(game.Up, now)
		case tcell.KeyDown:
			a.keys.Press(game.Down, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w', 'k':
				a.keys.Press(game.Up, now)
			case 's', 'j':
				a.keys.Press(game.Down, now)
			case 'p':
				a.paused = !a.paused
				a.keys.Release()
			case 'n', ' ':
				a.newMatch()
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) newMatch() {
	a.game.ResetGame(true)
	a.keys.Release()
	a.paused = false
	a.logger.Info("new match", "settings", a.game.Settings())
}

func (a *App) frame(now time.Time, dt float64) {
	if a.paused {
		return
	}
	res := a.game.Tick(a.keys.Input(now), dt)
	a.sounds.Play(res)
	if res.GoalScored {
		score := a.game.Score()
		a.logger.Info("goal", "scorer", res.Scorer.String(), "left", score.Left, "right", score.Right)
		if status := a.game.MatchStatus(); status.Terminal() {
			a.logger.Info("match over", "status", status.String())
		}
	}
}

func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	if width < minWidth || height < minHeight {
		drawText(a.screen, 0, 0, "terminal too small", textStyle)
		a.screen.Show()
		return
	}

	snap := a.game.Snapshot()
	// Row 0 holds the score, rows 1 and height-2 the walls, the last row the status.
	proj := Projector{X: 0, Y: 2, Width: width, Height: height - 4}

	score := scoreLine(snap.Score)
	drawText(a.screen, (width-len(score))/2, 0, score, textStyle)
	drawText(a.screen, 0, height-1, statusLine(snap, a.paused), textStyle)

	for x := 0; x < width; x++ {
		a.screen.SetContent(x, 1, '─', nil, wallStyle)
		a.screen.SetContent(x, height-2, '─', nil, wallStyle)
	}
	for y := proj.Y; y < proj.Y+proj.Height; y += 2 {
		a.screen.SetContent(width/2, y, '┆', nil, wallStyle)
	}

	fill(a.screen, proj, snap.LeftPaddle, '█', playerStyle)
	fill(a.screen, proj, snap.RightPaddle, '█', aiStyle)
	fill(a.screen, proj, snap.Ball, '●', ballStyle)

	a.screen.Show()
}

func fill(screen tcell.Screen, proj Projector, r game.Rect, ch rune, style tcell.Style) {
	col0, row0, col1, row1 := proj.Span(r)
	for y := row0; y <= row1; y++ {
		for x := col0; x <= col1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// scoreLine shows both scores as two digits each.
func scoreLine(s game.Score) string {
	lt, lo := game.Digits(s.Left)
	rt, ro := game.Digits(s.Right)
	return fmt.Sprintf("%d%d : %d%d", lt, lo, rt, ro)
}

func statusLine(snap game.Snapshot, paused bool) string {
	switch snap.Status {
	case game.LeftWon:
		return "you win! n: new match  q: quit"
	case game.RightWon:
		return "computer wins. n: new match  q: quit"
	}
	if paused {
		return "paused. p: resume"
	}
	return ""
}
