package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal929/OpenGLPong/game"
	"github.com/vishal929/OpenGLPong/protocol"
)

// TestSessionStreamsSnapshots tests that a new connection starts a match and receives frames.
func TestSessionStreamsSnapshots(t *testing.T) {
	srv, url := StartTestServer(t, Config{TickInterval: 5 * time.Millisecond, Seed: 1})

	conn := ConnectToServer(t, url)
	defer conn.Close()

	msg := ReadMessage(t, conn, protocol.Goal, protocol.MatchOver)
	require.Equal(t, protocol.Snapshot, msg.Type)

	snap := DecodeSnapshot(t, msg)
	assert.Equal(t, game.InProgress, snap.Status)
	assert.Equal(t, game.DefaultMaxScore, snap.MaxScore)
	assert.Equal(t, game.PaddleHeight, snap.LeftPaddle.Size.Y)
	assert.Equal(t, 1, srv.SessionCount())
}

// TestInvalidInputData tests that a non-string input payload is rejected.
func TestInvalidInputData(t *testing.T) {
	_, url := StartTestServer(t, Config{TickInterval: 5 * time.Millisecond})

	conn := ConnectToServer(t, url)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{
		Type: protocol.Input,
		Data: 123,
	})

	response := ReadMessage(t, conn, protocol.Snapshot, protocol.Goal, protocol.MatchOver)
	assert.Equal(t, protocol.ErrorMessage("Invalid input data"), response)
}

// TestInvalidSettings tests that out of range settings never reach the game.
func TestInvalidSettings(t *testing.T) {
	_, url := StartTestServer(t, Config{TickInterval: 5 * time.Millisecond})

	conn := ConnectToServer(t, url)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{
		Type: protocol.Settings,
		Data: map[string]interface{}{"ballSpeed": 1, "barSpeed": 1, "maxScore": 50},
	})

	response := ReadMessage(t, conn, protocol.Snapshot, protocol.Goal, protocol.MatchOver)
	assert.Equal(t, protocol.Error, response.Type)

	snap := ReadSnapshotUntil(t, conn, func(game.Snapshot) bool { return true })
	assert.Equal(t, game.DefaultMaxScore, snap.MaxScore)
}

// TestSettingsApplied tests that valid settings show up in the streamed snapshots.
func TestSettingsApplied(t *testing.T) {
	_, url := StartTestServer(t, Config{TickInterval: 5 * time.Millisecond})

	conn := ConnectToServer(t, url)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{
		Type: protocol.Settings,
		Data: game.Settings{BallSpeed: 0, BarSpeed: 2, MaxScore: 7},
	})

	snap := ReadSnapshotUntil(t, conn, func(s game.Snapshot) bool { return s.MaxScore == 7 })
	assert.Equal(t, 7, snap.MaxScore)
}

// TestInputMovesPaddle tests that holding up raises the human paddle.
func TestInputMovesPaddle(t *testing.T) {
	_, url := StartTestServer(t, Config{TickInterval: 5 * time.Millisecond})

	conn := ConnectToServer(t, url)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{
		Type: protocol.Input,
		Data: "up",
	})

	snap := ReadSnapshotUntil(t, conn, func(s game.Snapshot) bool {
		return s.LeftPaddle.Top() > game.PaddleStartY
	})
	assert.Greater(t, snap.LeftPaddle.Top(), game.PaddleStartY)
}

// TestNewMatchResetsScore tests that new_match answers with a fresh snapshot.
func TestNewMatchResetsScore(t *testing.T) {
	_, url := StartTestServer(t, Config{TickInterval: 5 * time.Millisecond})

	conn := ConnectToServer(t, url)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{Type: protocol.NewMatch})

	snap := ReadSnapshotUntil(t, conn, func(game.Snapshot) bool { return true })
	assert.Equal(t, game.InProgress, snap.Status)
}

// TestSessionRemovedOnClose tests that closing the socket ends the session.
func TestSessionRemovedOnClose(t *testing.T) {
	srv, url := StartTestServer(t, Config{TickInterval: 5 * time.Millisecond})

	conn := ConnectToServer(t, url)
	ReadMessage(t, conn)
	require.Equal(t, 1, srv.SessionCount())

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return srv.SessionCount() == 0 }, time.Second, 10*time.Millisecond)
}
