package term

import (
	"time"

	"github.com/vishal929/OpenGLPong/game"
)

// DefaultHold covers the gap between a key press and the terminal's auto-repeat.
const DefaultHold = 150 * time.Millisecond

// KeyState turns key press events into held paddle input. Terminals report no
// key releases, so a direction stays held until hold passes without a repeat.
type KeyState struct {
	hold      time.Duration
	upUntil   time.Time
	downUntil time.Time
}

func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyState{hold: hold}
}

// Press holds d and releases the opposite direction.
func (k *KeyState) Press(d game.Direction, now time.Time) {
	switch d {
	case game.Up:
		k.upUntil = now.Add(k.hold)
		k.downUntil = time.Time{}
	case game.Down:
		k.downUntil = now.Add(k.hold)
		k.upUntil = time.Time{}
	case game.Idle:
		k.Release()
	}
}

func (k *KeyState) Release() {
	k.upUntil = time.Time{}
	k.downUntil = time.Time{}
}

func (k *KeyState) Input(now time.Time) game.Input {
	return game.Input{
		Up:   now.Before(k.upUntil),
		Down: now.Before(k.downUntil),
	}
}
