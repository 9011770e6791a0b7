package term

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal929/OpenGLPong/game"
)

func newTestApp(t *testing.T, width, height int) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)

	g := game.NewGame(rand.New(rand.NewSource(1)))
	return NewApp(screen, g, Options{}), screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawPlacesPaddlesAndBall(t *testing.T) {
	app, screen := newTestApp(t, 80, 24)

	app.draw()

	proj := Projector{X: 0, Y: 2, Width: 80, Height: 20}
	snap := app.game.Snapshot()

	col, row := proj.Cell(snap.LeftPaddle.TopLeft)
	assert.Equal(t, '█', runeAt(screen, col, row), "left paddle top corner")
	col, row = proj.Cell(snap.RightPaddle.TopLeft)
	assert.Equal(t, '█', runeAt(screen, col, row), "right paddle top corner")
	col, row = proj.Cell(snap.Ball.TopLeft)
	assert.Equal(t, '●', runeAt(screen, col, row), "ball")

	assert.Equal(t, '─', runeAt(screen, 0, 1), "top wall")
	assert.Equal(t, '─', runeAt(screen, 79, 22), "bottom wall")
}

func TestDrawScoreLine(t *testing.T) {
	app, screen := newTestApp(t, 80, 24)

	app.draw()

	line := scoreLine(game.Score{})
	start := (80 - len(line)) / 2
	var got []rune
	for i := range line {
		got = append(got, runeAt(screen, start+i, 0))
	}
	assert.Equal(t, "00 : 00", string(got))
}

func TestDrawTooSmall(t *testing.T) {
	app, screen := newTestApp(t, 10, 4)

	app.draw()

	assert.Equal(t, 't', runeAt(screen, 0, 0))
}

func TestScoreLine(t *testing.T) {
	assert.Equal(t, "03 : 12", scoreLine(game.Score{Left: 3, Right: 12}))
}

func TestStatusLine(t *testing.T) {
	assert.Contains(t, statusLine(game.Snapshot{Status: game.LeftWon}, false), "you win")
	assert.Contains(t, statusLine(game.Snapshot{Status: game.RightWon}, false), "computer wins")
	assert.Contains(t, statusLine(game.Snapshot{}, true), "paused")
	assert.Empty(t, statusLine(game.Snapshot{}, false))
}

func TestHandleEventMovesAndQuits(t *testing.T) {
	app, _ := newTestApp(t, 80, 24)
	now := time.Now()

	assert.True(t, app.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now))
	assert.Equal(t, game.Input{Up: true}, app.keys.Input(now))

	assert.True(t, app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), now))
	assert.Equal(t, game.Input{Down: true}, app.keys.Input(now))

	assert.False(t, app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now))
	assert.False(t, app.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now))
}

func TestFrameAdvancesGame(t *testing.T) {
	app, _ := newTestApp(t, 80, 24)
	now := time.Now()
	app.keys.Press(game.Up, now)

	app.frame(now, 0.01)

	assert.Greater(t, app.game.Snapshot().LeftPaddle.Top(), game.PaddleStartY)
}

func TestPauseFreezesGame(t *testing.T) {
	app, _ := newTestApp(t, 80, 24)
	now := time.Now()
	before := app.game.Snapshot()

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), now)
	app.frame(now, 0.05)

	assert.Equal(t, before, app.game.Snapshot())
}

func TestNewMatchKeyResetsScore(t *testing.T) {
	app, _ := newTestApp(t, 80, 24)
	app.game.SetMaxScore(1)
	for i := 0; i < 100000 && !app.game.MatchStatus().Terminal(); i++ {
		app.game.Tick(game.Input{}, 1.0/60)
	}
	require.True(t, app.game.MatchStatus().Terminal())

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), time.Now())

	assert.Equal(t, game.InProgress, app.game.MatchStatus())
	assert.Equal(t, game.Score{}, app.game.Score())
}
