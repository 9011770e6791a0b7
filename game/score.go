package game

const DefaultMaxScore = 3

type Score struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Award credits one goal to side.
func (s *Score) Award(side Side) {
	switch side {
	case Left:
		s.Left++
	case Right:
		s.Right++
	}
}

func (s Score) Of(side Side) int {
	switch side {
	case Left:
		return s.Left
	case Right:
		return s.Right
	}
	return 0
}

// Status checks the left score first. Only one side scores per goal, so both
// sides can never reach max together.
func (s Score) Status(max int) MatchStatus {
	if s.Left == max {
		return LeftWon
	}
	if s.Right == max {
		return RightWon
	}
	return InProgress
}

// Digits splits a score into the two digits of the scoreboard.
// Scores outside 0..99 show their last two digits.
func Digits(score int) (tens, ones int) {
	if score < 0 {
		score = -score
	}
	return (score / 10) % 10, score % 10
}
