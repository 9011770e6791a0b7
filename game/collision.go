package game

// WallContact describes what a ball did against the field boundary in one step.
type WallContact int

const (
	NoWall WallContact = iota
	TopWall
	BottomWall
	LeftGoal
	RightGoal
)

var wallName = map[WallContact]string{
	NoWall:     "none",
	TopWall:    "top",
	BottomWall: "bottom",
	LeftGoal:   "left_goal",
	RightGoal:  "right_goal",
}

func (w WallContact) String() string {
	return wallName[w]
}

func (w WallContact) IsGoal() bool {
	return w == LeftGoal || w == RightGoal
}

// Scorer is the side credited with a goal contact.
// The ball crossing the left wall scores for the right player and vice versa.
func (w WallContact) Scorer() Side {
	switch w {
	case LeftGoal:
		return Right
	case RightGoal:
		return Left
	}
	return None
}

// Face is the paddle edge a ball struck.
type Face int

const (
	FaceNone Face = iota
	FaceTop
	FaceSide
	FaceBottom
	FaceCorner
)

var faceName = map[Face]string{
	FaceNone:   "none",
	FaceTop:    "top",
	FaceSide:   "side",
	FaceBottom: "bottom",
	FaceCorner: "corner",
}

func (f Face) String() string {
	return faceName[f]
}

// ResolveWalls checks the field boundary. Goals are reported before anything else
// and leave the ball untouched; top and bottom contacts clamp and reflect.
func ResolveWalls(b Ball) (Ball, WallContact) {
	switch {
	case b.Pos.X <= -1:
		return b, LeftGoal
	case b.Pos.X+b.Size.X >= 1:
		return b, RightGoal
	case b.Pos.Y-b.Size.Y <= FieldBottom:
		b.Pos.Y = FieldBottom + b.Size.Y
		b.Vel.Y = -b.Vel.Y
		return b, BottomWall
	case b.Pos.Y >= FieldTop:
		b.Pos.Y = FieldTop
		b.Vel.Y = -b.Vel.Y
		return b, TopWall
	}
	return b, NoWall
}

// probe is the ball corner that leads into a paddle on the given side:
// top-left for the left paddle, top-right for the right one.
func probe(pos, size Vec2, side Side) Vec2 {
	if side == Right {
		return Vec2{X: pos.X + size.X, Y: pos.Y}
	}
	return pos
}

// ResolvePaddle tests the ball against one paddle and, on overlap, works out the
// struck face from where the ball was on the previous step.
//
// A previous position still inside the box, or behind the paddle on the goal
// side, matches no face and leaves the ball as it is.
func ResolvePaddle(b Ball, paddle Rect, side Side) (Ball, Face) {
	if !paddle.Contains(probe(b.Pos, b.Size, side)) {
		return b, FaceNone
	}

	facing := side.Facing()
	prev := probe(b.Prev, b.Size, side)

	var front bool
	if facing > 0 {
		front = prev.X > paddle.Right()
	} else {
		front = prev.X < paddle.Left()
	}
	above := prev.Y > paddle.Top()
	below := prev.Y < paddle.Bottom()

	switch {
	case above && !front:
		b.Pos.Y = paddle.Top()
		b.Vel.Y = -b.Vel.Y
		return b, FaceTop

	case below && !front:
		b.Pos.Y = paddle.Bottom()
		b.Vel.Y = -b.Vel.Y
		return b, FaceBottom

	case front && !above && !below:
		b.Pos.X = nearEdge(b, paddle, side)
		// hit spans [-1,1] over the paddle height. Scaled by the incoming x speed it
		// sends a ball struck above center upward and one struck below downward.
		hit := facing * (paddle.CenterY() - b.Pos.Y) / (paddle.Size.Y / 2)
		b.Vel.Y = b.Vel.X * hit
		b.Vel.X = -b.Vel.X
		return b, FaceSide

	case front:
		b.Pos.X = nearEdge(b, paddle, side)
		if above {
			b.Pos.Y = paddle.Top()
		} else {
			b.Pos.Y = paddle.Bottom()
		}
		b.Vel = b.Vel.Scale(-1)
		return b, FaceCorner
	}

	return b, FaceNone
}

// nearEdge is the top-left x that puts the ball flush against the paddle's field side.
func nearEdge(b Ball, paddle Rect, side Side) float64 {
	if side == Right {
		return paddle.Left() - b.Size.X
	}
	return paddle.Right()
}
