package game

import "fmt"

// MatchStatus is derived from the score and the configured max score; it is never stored.
type MatchStatus int

const (
	InProgress MatchStatus = iota
	LeftWon
	RightWon
)

var statusName = map[MatchStatus]string{
	InProgress: "in_progress",
	LeftWon:    "left_won",
	RightWon:   "right_won",
}

func (s MatchStatus) String() string {
	return statusName[s]
}

func (s MatchStatus) Terminal() bool {
	return s != InProgress
}

// Winner returns the side that won, or None while the match is running.
func (s MatchStatus) Winner() Side {
	switch s {
	case LeftWon:
		return Left
	case RightWon:
		return Right
	}
	return None
}

func (s MatchStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MatchStatus) UnmarshalText(text []byte) error {
	for status, name := range statusName {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown match status %q", text)
}
