package game

// PredictIntercept estimates the height at which the ball will reach the paddle's
// near edge. It only looks at where the ball is and where it was one step ago, never
// at its velocity, and it ignores bounces off the top and bottom walls.
//
// ok is false when the ball has no horizontal motion or dt is not positive.
func PredictIntercept(b Ball, paddle Rect, dt float64) (y float64, ok bool) {
	trajectory := b.Pos.Sub(b.Prev)
	if trajectory.X == 0 || !(dt > 0) {
		return 0, false
	}

	remaining := paddle.Left() - (b.Pos.X + b.Size.X)
	arrival := remaining / (trajectory.X / dt)

	return b.Pos.Y + trajectory.Y*arrival, true
}

// ChooseDirection steers the paddle toward y, holding while y is within its span.
func ChooseDirection(y float64, paddle Rect) Direction {
	switch {
	case y > paddle.Top():
		return Up
	case y < paddle.Bottom():
		return Down
	}
	return Idle
}
