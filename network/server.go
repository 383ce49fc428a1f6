// Package network serves the chase game to browsers over WebSocket
// Each connection gets its own engine; sessions share nothing
package network

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/snake-chase/engine"
)

//go:embed static/index.html
var indexHTML []byte

// EngineFactory builds a fresh engine for session id
type EngineFactory func(id uint64) *engine.Engine

// Server accepts WebSocket sessions and runs one engine per session
type Server struct {
	cfg       *Config
	clock     engine.TimeProvider
	newEngine EngineFactory
	upgrader  websocket.Upgrader

	nextID atomic.Uint64
	wg     sync.WaitGroup

	// Cancelled on shutdown to end all sessions
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a server, clock must be the one the factory's engines were built on
func NewServer(cfg *Config, clock engine.TimeProvider, newEngine EngineFactory) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		cfg:       cfg,
		clock:     clock,
		newEngine: newEngine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // Single-player, no cross-session state to protect
			},
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler returns the HTTP routes: the page at / and the socket at /ws
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then ends all sessions
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.cfg.Address,
		Handler: s.Handler(),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.Close()
		shutdownErr <- httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close ends all sessions and waits for them to finish
func (s *Server) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrader already replied with an HTTP error
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	s.wg.Add(1)
	defer s.wg.Done()

	id := s.nextID.Add(1)
	log.Printf("session %d: connected from %s", id, r.RemoteAddr)
	newSession(id, conn, s.newEngine(id), s.clock, s.cfg).run(s.ctx)
}
