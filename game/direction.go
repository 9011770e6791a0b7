package game

type Direction int

const (
	Idle Direction = iota
	Up
	Down
)

var directionName = map[Direction]string{
	Idle: "idle",
	Up:   "up",
	Down: "down",
}

func (d Direction) String() string {
	return directionName[d]
}

// ParseDirection maps a wire name back to a Direction.
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionName {
		if n == name {
			return d, true
		}
	}
	return Idle, false
}

// Input is the per-frame state of the human paddle controls.
type Input struct {
	Up   bool
	Down bool
}

func InputFor(d Direction) Input {
	return Input{Up: d == Up, Down: d == Down}
}

// Direction collapses the input to a single move. Up wins when both are held.
func (in Input) Direction() Direction {
	switch {
	case in.Up:
		return Up
	case in.Down:
		return Down
	}
	return Idle
}
