package term

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vishal929/OpenGLPong/game"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var (
	paddleTone = tone{freq: 880, duration: 50 * time.Millisecond}
	wallTone   = tone{freq: 660, duration: 30 * time.Millisecond}
	goalTone   = tone{freq: 330, duration: 250 * time.Millisecond}
)

// toneFor picks the effect for a tick. Goals win over paddle hits, which win over walls.
func toneFor(res game.TickResult) (tone, bool) {
	switch {
	case res.GoalScored:
		return goalTone, true
	case res.Face != game.FaceNone:
		return paddleTone, true
	case res.Wall == game.TopWall || res.Wall == game.BottomWall:
		return wallTone, true
	}
	return tone{}, false
}

// Sounds plays short sine effects. When the speaker cannot be opened the game
// runs silently.
type Sounds struct {
	enabled bool
	logger  *slog.Logger
}

func NewSounds(enabled bool, logger *slog.Logger) *Sounds {
	s := &Sounds{logger: logger}
	if !enabled {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio initialization failed", "err", err)
		return s
	}
	s.enabled = true
	return s
}

func (s *Sounds) Play(res game.TickResult) {
	if s == nil || !s.enabled {
		return
	}
	t, ok := toneFor(res)
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		s.logger.Debug("tone generation failed", "freq", t.freq, "err", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

func (s *Sounds) Close() {
	if s != nil && s.enabled {
		speaker.Close()
		s.enabled = false
	}
}
