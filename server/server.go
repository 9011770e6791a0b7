package server

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vishal929/OpenGLPong/game"
	"github.com/vishal929/OpenGLPong/protocol"
)

const (
	DefaultTickInterval = 16 * time.Millisecond

	// maxFrameDelta caps the step after a stalled frame so the ball cannot tunnel
	// through a paddle in one tick.
	maxFrameDelta = 0.1
)

type Config struct {
	TickInterval time.Duration
	// Seed makes every session reproducible when non-zero. Session n is seeded
	// with Seed+n.
	Seed   int64
	Logger *slog.Logger
}

type Server struct {
	sessions     map[string]*Session
	sessionsLock sync.Mutex
	upgrader     websocket.Upgrader
	config       Config
	logger       *slog.Logger
	created      atomic.Int64
}

// Session is one player's match against the computer opponent, bound to a
// single websocket connection.
type Session struct {
	ID     string
	Conn   *websocket.Conn
	Server *Server

	mu    sync.Mutex
	game  *game.Game
	input game.Input

	writeMu sync.Mutex
	done    chan struct{}
	logger  *slog.Logger
}

func NewServer(config Config) *Server {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Server{
		sessions: make(map[string]*Session),
		upgrader: websocket.Upgrader{},
		config:   config,
		logger:   config.Logger,
	}
}

// Handler serves the websocket endpoint at the root path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleConnection)
	return mux
}

func (s *Server) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade error", "err", err)
		return
	}

	session := s.newSession(conn)
	s.register(session)
	defer s.unregister(session)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		session.run(s.config.TickInterval)
	}()

	session.Listen()
	close(session.done)
	wg.Wait()
}

func (s *Server) newSession(conn *websocket.Conn) *Session {
	n := s.created.Add(1)

	var rng game.Rand
	if s.config.Seed != 0 {
		rng = rand.New(rand.NewSource(s.config.Seed + n))
	}

	id := uuid.NewString()
	return &Session{
		ID:     id,
		Conn:   conn,
		Server: s,
		game:   game.NewGame(rng),
		done:   make(chan struct{}),
		logger: s.logger.With("session", id),
	}
}

func (s *Server) register(session *Session) {
	s.sessionsLock.Lock()
	s.sessions[session.ID] = session
	s.sessionsLock.Unlock()
	session.logger.Info("session started", "remote", session.Conn.RemoteAddr().String())
}

func (s *Server) unregister(session *Session) {
	s.sessionsLock.Lock()
	delete(s.sessions, session.ID)
	s.sessionsLock.Unlock()
	session.logger.Info("session ended")
}

func (s *Server) SessionCount() int {
	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	return len(s.sessions)
}

// Listen reads client frames until the connection fails or closes.
func (c *Session) Listen() {
	defer func() {
		if err := c.Conn.Close(); err != nil {
			c.logger.Debug("error closing connection", "err", err)
		}
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("connection closed normally")
			} else {
				c.logger.Warn("read error", "err", err)
			}
			return
		}
		protocol.ParseMessage(c, message)
	}
}

// run drives the frame loop. dt is measured from the wall clock between ticks.
func (c *Session) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			c.step(dt)
		}
	}
}

func (c *Session) step(dt float64) {
	c.mu.Lock()
	res := c.game.Tick(c.input, dt)
	snap := c.game.Snapshot()
	c.mu.Unlock()

	if res.GoalScored {
		c.logger.Info("goal", "scorer", res.Scorer.String(), "left", snap.Score.Left, "right", snap.Score.Right)
		c.Send(protocol.GoalMessage(res.Scorer))
		if snap.Status.Terminal() {
			c.logger.Info("match over", "status", snap.Status.String())
			c.Send(protocol.MatchOverMessage(snap.Status))
		}
	}
	c.Send(protocol.SnapshotMessage(snap))
}

func (c *Session) HandleInput(in game.Input) {
	c.mu.Lock()
	c.input = in
	c.mu.Unlock()
}

func (c *Session) HandleSettings(settings game.Settings) {
	c.mu.Lock()
	c.game.Apply(settings)
	c.mu.Unlock()
	c.logger.Info("settings changed", "ballSpeed", settings.BallSpeed, "barSpeed", settings.BarSpeed, "maxScore", settings.MaxScore)
}

func (c *Session) HandleNewMatch() {
	c.mu.Lock()
	c.game.ResetGame(true)
	snap := c.game.Snapshot()
	c.mu.Unlock()

	c.logger.Info("new match")
	c.Send(protocol.SnapshotMessage(snap))
}

// Send is called from both the reader and the frame loop; gorilla connections
// support a single concurrent writer.
func (c *Session) Send(message protocol.Message) {
	data, err := json.Marshal(message)
	if err != nil {
		c.logger.Error("error marshalling message", "err", err)
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.logger.Debug("write error", "err", err)
	}
}
