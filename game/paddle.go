package game

import "math"

const (
	PaddleWidth  = 0.04
	PaddleHeight = 0.4

	LeftPaddleX  = -0.95
	RightPaddleX = 0.91
	PaddleStartY = 0.2

	FieldTop    = 1.0
	FieldBottom = -1.0
)

type Paddle struct {
	Rect
}

func NewPaddle(x float64) Paddle {
	return Paddle{Rect: Rect{
		TopLeft: Vec2{X: x, Y: PaddleStartY},
		Size:    Vec2{X: PaddleWidth, Y: PaddleHeight},
	}}
}

// MoveUp raises the paddle by d without letting its top leave the field.
func (p *Paddle) MoveUp(d float64) {
	p.TopLeft.Y = math.Min(FieldTop, p.TopLeft.Y+d)
}

// MoveDown lowers the paddle by d without letting its bottom leave the field.
func (p *Paddle) MoveDown(d float64) {
	p.TopLeft.Y = math.Max(FieldBottom+p.Size.Y, p.TopLeft.Y-d)
}

func (p *Paddle) Move(dir Direction, d float64) {
	switch dir {
	case Up:
		p.MoveUp(d)
	case Down:
		p.MoveDown(d)
	}
}

func (p *Paddle) ResetPosition() {
	p.TopLeft.Y = PaddleStartY
}
