package protocol

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-viper/mapstructure/v2"

	"github.com/vishal929/OpenGLPong/game"
)

const (
	Input     = "input"
	Settings  = "settings"
	NewMatch  = "new_match"
	Snapshot  = "snapshot"
	Goal      = "goal"
	MatchOver = "match_over"
	Error     = "error"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ClientActions interface {
	HandleInput(in game.Input)
	HandleSettings(s game.Settings)
	HandleNewMatch()
	Send(msg Message)
}

// ParseMessage decodes one client frame and dispatches it. Bad payloads are
// answered with an error message instead of being dropped silently.
func ParseMessage(client ClientActions, rawMessage []byte) {
	var message Message
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.Warn("error parsing message", "err", err)
		client.Send(ErrorMessage("Malformed message"))
		return
	}

	switch message.Type {
	case Input:
		name, ok := message.Data.(string)
		if !ok {
			client.Send(ErrorMessage("Invalid input data"))
			return
		}
		direction, ok := game.ParseDirection(name)
		if !ok {
			client.Send(ErrorMessage("Invalid input direction"))
			return
		}
		client.HandleInput(game.InputFor(direction))

	case Settings:
		settings, err := DecodeSettings(message.Data)
		if err != nil {
			client.Send(ErrorMessage(err.Error()))
			return
		}
		client.HandleSettings(settings)

	case NewMatch:
		client.HandleNewMatch()

	default:
		slog.Warn("unknown message type", "type", message.Type)
		client.Send(ErrorMessage("Unknown message type"))
	}
}

// DecodeSettings reads a settings payload. Every field must be present and the
// values must pass game.Settings.Validate.
func DecodeSettings(data interface{}) (game.Settings, error) {
	var settings game.Settings

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &settings,
		ErrorUnused: true,
		ErrorUnset:  true,
	})
	if err != nil {
		return settings, fmt.Errorf("building settings decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return settings, fmt.Errorf("Invalid settings data: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func ErrorMessage(text string) Message {
	return Message{Type: Error, Data: text}
}

func SnapshotMessage(snap game.Snapshot) Message {
	return Message{Type: Snapshot, Data: snap}
}

func GoalMessage(scorer game.Side) Message {
	return Message{Type: Goal, Data: scorer.String()}
}

func MatchOverMessage(status game.MatchStatus) Message {
	return Message{Type: MatchOver, Data: status.String()}
}
