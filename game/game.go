package game

import (
	"math"
	"math/rand"
	"time"
)

// Game owns one match session: both paddles, the ball, the score and the settings.
// It is not safe for concurrent use; callers serialize Tick and the setters.
type Game struct {
	leftPaddle  Paddle
	rightPaddle Paddle
	ball        Ball
	score       Score
	maxScore    int
	ballSpeed   float64
	barSpeed    float64
	rng         Rand
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	GoalScored bool
	Scorer     Side
	Wall       WallContact
	Face       Face
	FaceSide   Side
}

// Snapshot is the renderable projection of a Game.
type Snapshot struct {
	LeftPaddle  Rect        `json:"leftPaddle"`
	RightPaddle Rect        `json:"rightPaddle"`
	Ball        Rect        `json:"ball"`
	Score       Score       `json:"score"`
	MaxScore    int         `json:"maxScore"`
	Status      MatchStatus `json:"status"`
}

// NewGame starts a session with default settings. rng supplies every random draw
// the game makes; nil seeds a private generator from the clock.
func NewGame(rng Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		leftPaddle:  NewPaddle(LeftPaddleX),
		rightPaddle: NewPaddle(RightPaddleX),
		ball:        NewBall(),
		maxScore:    DefaultMaxScore,
		ballSpeed:   DefaultBallSpeed,
		barSpeed:    DefaultBarSpeed,
		rng:         rng,
	}
	g.ball.Reset(InitialVelocity(g.rng, g.ballSpeed))
	return g
}

// Tick advances the match by dt seconds. It does nothing when dt is not a positive
// finite number or when the match is already decided.
func (g *Game) Tick(in Input, dt float64) TickResult {
	var res TickResult
	if !(dt > 0) || math.IsInf(dt, 1) || g.MatchStatus().Terminal() {
		return res
	}

	step := dt * g.barSpeed
	g.leftPaddle.Move(in.Direction(), step)
	g.moveAI(dt)

	g.ball.Integrate(dt, g.ballSpeed)

	var wall WallContact
	g.ball, wall = ResolveWalls(g.ball)
	res.Wall = wall

	if wall.IsGoal() {
		res.GoalScored = true
		res.Scorer = wall.Scorer()
		g.score.Award(res.Scorer)
		if !g.MatchStatus().Terminal() {
			g.ResetGame(false)
		}
		return res
	}

	g.resolvePaddles(&res)
	return res
}

func (g *Game) moveAI(dt float64) {
	y, ok := PredictIntercept(g.ball, g.rightPaddle.Rect, dt)
	if !ok {
		return
	}
	g.rightPaddle.Move(ChooseDirection(y, g.rightPaddle.Rect), dt*g.barSpeed)
}

func (g *Game) resolvePaddles(res *TickResult) {
	for _, p := range []struct {
		paddle *Paddle
		side   Side
	}{
		{&g.leftPaddle, Left},
		{&g.rightPaddle, Right},
	} {
		var face Face
		g.ball, face = ResolvePaddle(g.ball, p.paddle.Rect, p.side)
		if face != FaceNone {
			res.Face = face
			res.FaceSide = p.side
		}
	}
}

func (g *Game) MatchStatus() MatchStatus {
	return g.score.Status(g.maxScore)
}

// ResetGame recenters the paddles and the ball and serves again. A total reset
// also clears the score and starts a new match.
func (g *Game) ResetGame(totalReset bool) {
	g.leftPaddle.ResetPosition()
	g.rightPaddle.ResetPosition()
	if totalReset {
		g.score = Score{}
	}
	g.ball.Reset(InitialVelocity(g.rng, g.ballSpeed))
}

// SetSpeeds takes effect on the next Tick. The ball's current velocity keeps the
// speed it was served with until the next reset.
func (g *Game) SetSpeeds(ballMultiplier, barMultiplier float64) {
	g.ballSpeed = ballMultiplier
	g.barSpeed = barMultiplier
}

func (g *Game) SetMaxScore(n int) {
	g.maxScore = n
}

func (g *Game) Apply(s Settings) {
	g.SetSpeeds(s.BallSpeed, s.BarSpeed)
	g.SetMaxScore(s.MaxScore)
}

func (g *Game) Settings() Settings {
	return Settings{
		BallSpeed: g.ballSpeed,
		BarSpeed:  g.barSpeed,
		MaxScore:  g.maxScore,
	}
}

func (g *Game) Score() Score {
	return g.score
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		LeftPaddle:  g.leftPaddle.Rect,
		RightPaddle: g.rightPaddle.Rect,
		Ball:        g.ball.Rect(),
		Score:       g.score,
		MaxScore:    g.maxScore,
		Status:      g.MatchStatus(),
	}
}
