package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreAward(t *testing.T) {
	var s Score

	s.Award(Left)
	s.Award(Right)
	s.Award(Right)
	s.Award(None)

	assert.Equal(t, Score{Left: 1, Right: 2}, s)
	assert.Equal(t, 1, s.Of(Left))
	assert.Equal(t, 2, s.Of(Right))
	assert.Equal(t, 0, s.Of(None))
}

func TestScoreStatus(t *testing.T) {
	tests := []struct {
		name  string
		score Score
		max   int
		want  MatchStatus
	}{
		{"fresh match", Score{}, 3, InProgress},
		{"one short", Score{Left: 2, Right: 2}, 3, InProgress},
		{"left reaches max", Score{Left: 3, Right: 1}, 3, LeftWon},
		{"right reaches max", Score{Left: 0, Right: 3}, 3, RightWon},
		{"left checked first", Score{Left: 1, Right: 1}, 1, LeftWon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.score.Status(tt.max)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestMatchStatusWinner(t *testing.T) {
	assert.Equal(t, None, InProgress.Winner())
	assert.Equal(t, Left, LeftWon.Winner())
	assert.Equal(t, Right, RightWon.Winner())
	assert.False(t, InProgress.Terminal())
	assert.True(t, RightWon.Terminal())
	assert.Equal(t, "left_won", LeftWon.String())
}

func TestDigits(t *testing.T) {
	tests := []struct {
		score      int
		tens, ones int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{9, 0, 9},
		{10, 1, 0},
		{19, 1, 9},
		{99, 9, 9},
		{123, 2, 3},
	}

	for _, tt := range tests {
		tens, ones := Digits(tt.score)
		assert.Equal(t, tt.tens, tens, "tens of %d", tt.score)
		assert.Equal(t, tt.ones, ones, "ones of %d", tt.score)
	}
}

func TestMatchStatusText(t *testing.T) {
	for _, status := range []MatchStatus{InProgress, LeftWon, RightWon} {
		text, err := status.MarshalText()
		assert.NoError(t, err)

		var back MatchStatus
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, status, back)
	}

	var bad MatchStatus
	assert.Error(t, bad.UnmarshalText([]byte("draw")))
}
