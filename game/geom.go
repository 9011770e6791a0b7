package game

// Vec2 is a point or displacement in the normalized field, y pointing up.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Rect is an axis-aligned box stored by its top-left corner. It spans
// [Left, Right] horizontally and [Bottom, Top] vertically.
type Rect struct {
	TopLeft Vec2 `json:"topLeft"`
	Size    Vec2 `json:"size"`
}

func (r Rect) Left() float64 {
	return r.TopLeft.X
}

func (r Rect) Right() float64 {
	return r.TopLeft.X + r.Size.X
}

func (r Rect) Top() float64 {
	return r.TopLeft.Y
}

func (r Rect) Bottom() float64 {
	return r.TopLeft.Y - r.Size.Y
}

func (r Rect) CenterY() float64 {
	return r.TopLeft.Y - r.Size.Y/2
}

// Contains reports whether p lies inside the box, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Bottom() && p.Y <= r.Top()
}
