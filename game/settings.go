package game

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultBallSpeed = 1.0
	DefaultBarSpeed  = 5.0

	MinSpeed    = 0.0
	MaxSpeed    = 10.0
	MinMaxScore = 1
	MaxMaxScore = 20
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the user facing configuration of a match.
type Settings struct {
	BallSpeed float64 `json:"ballSpeed" mapstructure:"ballSpeed"`
	BarSpeed  float64 `json:"barSpeed" mapstructure:"barSpeed"`
	MaxScore  int     `json:"maxScore" mapstructure:"maxScore"`
}

func DefaultSettings() Settings {
	return Settings{
		BallSpeed: DefaultBallSpeed,
		BarSpeed:  DefaultBarSpeed,
		MaxScore:  DefaultMaxScore,
	}
}

// Validate enforces the ranges offered to players. The engine itself accepts any
// value, so every place that takes settings from outside calls this first.
func (s Settings) Validate() error {
	if err := checkSpeed("ball speed", s.BallSpeed); err != nil {
		return err
	}
	if err := checkSpeed("paddle speed", s.BarSpeed); err != nil {
		return err
	}
	if s.MaxScore < MinMaxScore || s.MaxScore > MaxMaxScore {
		return fmt.Errorf("%w: max score %d outside [%d, %d]", ErrInvalidSettings, s.MaxScore, MinMaxScore, MaxMaxScore)
	}
	return nil
}

func checkSpeed(name string, v float64) error {
	if math.IsNaN(v) || v < MinSpeed || v > MaxSpeed {
		return fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidSettings, name, v, MinSpeed, MaxSpeed)
	}
	return nil
}
