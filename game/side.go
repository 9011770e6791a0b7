package game

type Side int

const (
	None Side = iota
	Left
	Right
)

var sideName = map[Side]string{
	None:  "none",
	Left:  "left",
	Right: "right",
}

func (s Side) String() string {
	return sideName[s]
}

// Facing is the sign of the x axis pointing from the side's paddle into the field.
func (s Side) Facing() float64 {
	if s == Right {
		return -1
	}
	return 1
}

// Opponent returns the other side. None has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
