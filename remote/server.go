// Package remote runs a pencil scene headlessly and exposes it over HTTP:
// clients send pointer events through a websocket and fetch the rendered
// frames as PNG.
package remote

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/phanxgames/pencil"
)

const maxMsgSize = 4 * 1024

// Config configures a Server.
type Config struct {
	Width  int
	Height int
	// FPS is the number of frames flushed per second. Defaults to 30.
	FPS int
	// OriginPatterns lists the hosts allowed to open a websocket from another
	// origin. See websocket.AcceptOptions.
	OriginPatterns []string
}

// Server hosts a scene: it is the scene's container, input source and
// frame scheduler. Build the scene with SceneConfig, then call Run.
type Server struct {
	cfg    Config
	source *Source
	frames *pencil.FrameQueue
	canvas *pencil.Canvas

	mu    sync.RWMutex
	frame []byte

	clients atomic.Int32
}

// NewServer creates a server for a viewport of the configured size.
func NewServer(cfg Config) *Server {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	return &Server{
		cfg:    cfg,
		source: NewSource(),
		frames: pencil.NewFrameQueue(),
	}
}

// SceneConfig returns a SceneConfig wired to this server.
func (s *Server) SceneConfig() pencil.SceneConfig {
	return pencil.SceneConfig{Host: s, Input: s.source, Scheduler: s.frames}
}

// Bounds returns the viewport. Client coordinates are viewport coordinates.
func (s *Server) Bounds() pencil.Rect {
	return pencil.Rect{Width: float64(s.cfg.Width), Height: float64(s.cfg.Height)}
}

// Scroll always returns the origin.
func (s *Server) Scroll() pencil.Position {
	return pencil.Position{}
}

// Mount keeps the scene's canvas for snapshots.
func (s *Server) Mount(surface pencil.Surface) {
	if c, ok := surface.(*pencil.Canvas); ok {
		s.canvas = c
	}
}

// Source returns the server's input source.
func (s *Server) Source() *Source {
	return s.source
}

// Clients returns the number of connected websocket clients.
func (s *Server) Clients() int {
	return int(s.clients.Load())
}

// Run drives the scene until ctx is done or a frame fails. Every tick
// delivers the queued input, runs the requested frames and, if any ran,
// snapshots the canvas.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.tick(); err != nil {
				return err
			}
		}
	}
}

func (s *Server) tick() error {
	s.source.Drain()
	rendered := s.frames.Pending() > 0
	if err := s.frames.Flush(); err != nil {
		return err
	}
	if rendered {
		return s.snapshot()
	}
	return nil
}

func (s *Server) snapshot() error {
	if s.canvas == nil {
		return nil
	}
	frame := []byte{}
	if s.canvas.Visible() {
		var buf bytes.Buffer
		if err := s.canvas.EncodePNG(&buf); err != nil {
			return err
		}
		frame = buf.Bytes()
	}
	s.mu.Lock()
	s.frame = frame
	s.mu.Unlock()
	return nil
}

// Routes registers the server's handlers on r.
func (s *Server) Routes(r *mux.Router) {
	r.HandleFunc("/ws", s.HandleWebSocket)
	r.HandleFunc("/frame.png", s.HandleFrame).Methods("GET")
}

// HandleFrame serves the last rendered frame. It answers 204 while the
// scene is hidden and 503 before the first frame.
func (s *Server) HandleFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	frame := s.frame
	s.mu.RUnlock()

	switch {
	case frame == nil:
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
	case len(frame) == 0:
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(frame)
	}
}

// HandleWebSocket accepts a client and queues every message it sends until
// it disconnects.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.OriginPatterns,
	})
	if err != nil {
		pencil.Logger().Error("websocket accept", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	clientID := uuid.New().String()
	s.clients.Add(1)
	defer s.clients.Add(-1)
	pencil.Logger().Info("client connected", "client", clientID)

	s.readPump(r.Context(), conn, clientID)
}

func (s *Server) readPump(ctx context.Context, conn *websocket.Conn, clientID string) {
	conn.SetReadLimit(maxMsgSize)
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				pencil.Logger().Info("client disconnected", "client", clientID)
				return
			}
			if !errors.Is(err, context.Canceled) {
				pencil.Logger().Debug("read error", "error", err, "client", clientID)
			}
			return
		}
		if err := s.source.HandleMessage(data); err != nil {
			pencil.Logger().Warn("invalid message", "error", err, "client", clientID)
		}
	}
}
