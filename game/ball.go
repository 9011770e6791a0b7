package game

import "math"

const (
	BallSize = 0.04

	BallStartX = -0.02
	BallStartY = 0.02
)

// Rand is the part of *rand.Rand the engine draws from.
type Rand interface {
	Float64() float64
}

type Ball struct {
	Pos  Vec2
	Prev Vec2
	Vel  Vec2
	Size Vec2
}

func NewBall() Ball {
	start := Vec2{X: BallStartX, Y: BallStartY}
	return Ball{
		Pos:  start,
		Prev: start,
		Size: Vec2{X: BallSize, Y: BallSize},
	}
}

func (b Ball) Rect() Rect {
	return Rect{TopLeft: b.Pos, Size: b.Size}
}

// Integrate remembers the current position and advances the ball by dt.
// The velocity is scaled by mult on top of whatever speed it already carries.
func (b *Ball) Integrate(dt, mult float64) {
	b.Prev = b.Pos
	b.Pos = b.Pos.Add(b.Vel.Scale(dt * mult))
}

// Reset puts the ball back on the center spot with no trajectory and the given velocity.
func (b *Ball) Reset(vel Vec2) {
	b.Pos = Vec2{X: BallStartX, Y: BallStartY}
	b.Prev = b.Pos
	b.Vel = vel
}

// InitialVelocity samples a serve. The x component always has magnitude speed,
// the y component lies in (speed*cos(1), speed]; both signs are random.
func InitialVelocity(r Rand, speed float64) Vec2 {
	v := Vec2{X: speed, Y: speed * math.Cos(r.Float64())}
	if r.Float64() > 0.5 {
		v.X = -v.X
	}
	if r.Float64() > 0.5 {
		v.Y = -v.Y
	}
	return v
}
