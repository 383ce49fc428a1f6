package network

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/snake-chase/engine"
)

// session drives one engine for one WebSocket connection
// The frame loop owns the engine and all writes; readLoop only forwards inputs
type session struct {
	id     uint64
	conn   *websocket.Conn
	engine *engine.Engine
	clock  engine.TimeProvider
	cfg    *Config
	inputs chan engine.Input
}

func newSession(id uint64, conn *websocket.Conn, eng *engine.Engine, clock engine.TimeProvider, cfg *Config) *session {
	return &session{
		id:     id,
		conn:   conn,
		engine: eng,
		clock:  clock,
		cfg:    cfg,
		inputs: make(chan engine.Input, cfg.InputQueueSize),
	}
}

// run steps the engine once per frame until quit, disconnect or ctx cancellation
func (s *session) run(ctx context.Context) {
	defer s.conn.Close()

	readDone := make(chan struct{})
	go s.readLoop(readDone)

	ticker := time.NewTicker(s.cfg.FrameInterval)
	defer ticker.Stop()

	first := true
	for {
		select {
		case <-ctx.Done():
			s.closeWith(websocket.CloseGoingAway, "server shutdown")
			return

		case <-readDone:
			log.Printf("session %d: client disconnected", s.id)
			return

		case <-ticker.C:
			// One queued input per frame, matching the terminal driver's per-frame key
			in := engine.InputNone
			select {
			case in = <-s.inputs:
			default:
			}

			snap := s.engine.Step(in, s.clock.Now())
			if !first && in == engine.InputNone && !snap.Moved && !snap.Clear {
				continue
			}
			first = false

			if err := s.writeFrame(snap); err != nil {
				log.Printf("session %d: write failed: %v", s.id, err)
				return
			}
			if snap.Quit {
				log.Printf("session %d: quit at score %d", s.id, snap.Score)
				s.closeWith(websocket.CloseNormalClosure, "quit")
				return
			}
		}
	}
}

// readLoop forwards client actions; malformed messages and unknown actions are dropped
func (s *session) readLoop(done chan<- struct{}) {
	defer close(done)

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("session %d: read failed: %v", s.id, err)
			}
			return
		}

		var msg ClientMessage
		if json.Unmarshal(data, &msg) != nil {
			continue
		}
		in := engine.ParseInput(msg.Action)
		if in == engine.InputNone {
			continue
		}

		select {
		case s.inputs <- in:
		default:
			// Queue full, drop
		}
	}
}

func (s *session) writeFrame(snap engine.Snapshot) error {
	s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	return s.conn.WriteJSON(EncodeFrame(snap))
}

func (s *session) closeWith(code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.cfg.WriteTimeout))
}
