package term

import "github.com/vishal929/OpenGLPong/game"

// Projector maps the normalized field onto a block of terminal cells starting at
// (X, Y). Row numbers grow downward while field y grows upward.
type Projector struct {
	X, Y          int
	Width, Height int
}

// Cell returns the cell containing v, clamped to the block.
func (p Projector) Cell(v game.Vec2) (col, row int) {
	col = p.X + clamp(int((v.X+1)/2*float64(p.Width)), 0, p.Width-1)
	row = p.Y + clamp(int((1-v.Y)/2*float64(p.Height)), 0, p.Height-1)
	return col, row
}

// Span returns the inclusive cell range covered by r. Every rect covers at least
// one cell so thin objects never disappear.
func (p Projector) Span(r game.Rect) (col0, row0, col1, row1 int) {
	col0, row0 = p.Cell(r.TopLeft)
	col1, row1 = p.Cell(game.Vec2{X: r.Right(), Y: r.Bottom()})
	// The far edge belongs to the next cell when it lands exactly on a boundary.
	if col1 > col0 && isBoundary((r.Right()+1)/2*float64(p.Width)) {
		col1--
	}
	if row1 > row0 && isBoundary((1-r.Bottom())/2*float64(p.Height)) {
		row1--
	}
	return col0, row0, col1, row1
}

func isBoundary(f float64) bool {
	return f == float64(int(f))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
