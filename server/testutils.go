package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vishal929/OpenGLPong/game"
	"github.com/vishal929/OpenGLPong/protocol"
)

// StartTestServer serves srv on a local listener that is closed when the test ends.
func StartTestServer(t *testing.T, config Config) (*Server, string) {
	t.Helper()
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	srv := NewServer(config)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, "ws" + strings.TrimPrefix(ts.URL, "http") + "/"
}

// ConnectToServer creates a WebSocket connection to the test server.
func ConnectToServer(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal("Failed to connect to WebSocket server:", err)
	}
	return conn
}

// SendMessage sends a Message over the WebSocket connection.
func SendMessage(t *testing.T, conn *websocket.Conn, msg protocol.Message) {
	t.Helper()
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal("Failed to marshal message:", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatal("Failed to send message:", err)
	}
}

// ReadMessage reads the next Message within a second, skipping any of ignoreTypes.
func ReadMessage(t *testing.T, conn *websocket.Conn, ignoreTypes ...string) protocol.Message {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	if err := conn.SetReadDeadline(deadline); err != nil {
		t.Fatal("Failed to set read deadline:", err)
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.Fatal("Failed to read message from WebSocket:", err)
		}

		var msg protocol.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatal("Failed to unmarshal message:", err)
		}

		if !contains(ignoreTypes, msg.Type) {
			return msg
		}
	}
}

// ReadSnapshotUntil reads snapshots until match returns true or a second passes.
func ReadSnapshotUntil(t *testing.T, conn *websocket.Conn, match func(game.Snapshot) bool) game.Snapshot {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		msg := ReadMessage(t, conn, protocol.Goal, protocol.MatchOver)
		if msg.Type != protocol.Snapshot {
			continue
		}
		snap := DecodeSnapshot(t, msg)
		if match(snap) {
			return snap
		}
	}
	t.Fatal("No matching snapshot within a second")
	return game.Snapshot{}
}

func DecodeSnapshot(t *testing.T, msg protocol.Message) game.Snapshot {
	t.Helper()
	raw, err := json.Marshal(msg.Data)
	if err != nil {
		t.Fatal("Failed to re-marshal snapshot:", err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatal("Failed to decode snapshot:", err)
	}
	return snap
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
