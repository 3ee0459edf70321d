package pencil

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gogpu/gg"
)

// Host is the embedding context a scene is displayed in: a window, a page
// element or a headless viewport.
type Host interface {
	// Bounds returns the area the scene occupies, relative to the host's
	// viewport at the time of the call.
	Bounds() Rect
	// Scroll returns the current scroll offset of the host's document.
	Scroll() Position
}

// SceneConfig wires a Scene to its host.
type SceneConfig struct {
	// Host is required. If it also implements Surface it is drawn into
	// directly; otherwise a Canvas is created and handed to it through
	// Mounter when supported.
	Host Host
	// Input is bound at construction when non-nil.
	Input InputSource
	// Scheduler runs looped frames. Defaults to a new FrameQueue.
	Scheduler Scheduler
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// Scene is the root of the node tree. It owns the drawing surface, runs the
// frame loop and turns raw pointer input into events on the nodes.
type Scene struct {
	Component

	host              Host
	surface           Surface
	center            Position
	containerPosition Position

	input       InputSource
	unsubscribe func()
	bound       bool

	scheduler Scheduler
	clock     func() time.Time
	looping   bool
	fps       float64
	lastTick  time.Time
	pending   FrameID

	interaction interactionState
	store       EntityStore
	debug       bool
}

// NewScene creates a scene sized to its host.
// Recognized options are WithFill (background), WithOpacity (global
// opacity) and WithCursor (default cursor).
func NewScene(cfg SceneConfig, opts ...Option) (*Scene, error) {
	if cfg.Host == nil {
		return nil, ErrNoContainer
	}

	base := defaultOptions()
	base.Cursor = CursorDefault
	s := &Scene{
		host:      cfg.Host,
		scheduler: cfg.Scheduler,
		clock:     cfg.Clock,
	}
	s.initComponent(s, Position{}, applyOptions(base, opts))
	s.Name = "scene"
	s.interaction.clicked = make(map[Node]struct{})
	if s.scheduler == nil {
		s.scheduler = NewFrameQueue()
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	measures := cfg.Host.Bounds()
	w, h := max(int(measures.Width), 1), max(int(measures.Height), 1)
	if surface, ok := cfg.Host.(Surface); ok {
		if err := surface.Resize(w, h); err != nil {
			return nil, fmt.Errorf("pencil: size surface to host: %w", err)
		}
		s.surface = surface
	} else {
		s.surface = NewCanvas(w, h)
		if m, ok := cfg.Host.(Mounter); ok {
			m.Mount(s.surface)
		}
	}

	s.center = Pos(float64(s.Width())/2, float64(s.Height())/2)
	scroll := cfg.Host.Scroll()
	s.containerPosition = Pos(measures.X+scroll.X, measures.Y+scroll.Y)

	if cfg.Input != nil {
		if err := s.Bind(cfg.Input); err != nil {
			return nil, err
		}
	}

	Logger().Debug("scene created", "width", s.Width(), "height", s.Height())
	return s, nil
}

// Bind starts delivering src's events to the scene. Binding while already
// bound fails with ErrAlreadyBound; call Close first to rebind.
func (s *Scene) Bind(src InputSource) error {
	if s.bound {
		return ErrAlreadyBound
	}
	s.bound = true
	s.input = src
	s.unsubscribe = src.Subscribe(s.handleRaw)
	return nil
}

// Close stops the loop and unsubscribes from the input source.
func (s *Scene) Close() {
	s.StopLoop()
	if !s.bound {
		return
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.unsubscribe = nil
	s.input = nil
	s.bound = false
}

// IsHover always reports true: the scene is the fallback target of every
// pointer event.
func (s *Scene) IsHover(Position) bool { return true }

// Trace draws nothing; the background is painted by Render.
func (s *Scene) Trace(*gg.Path) {}

// Render draws one frame. When looping, the next frame is requested before
// drawing. If the draw pass fails, that request is cancelled, the loop
// stops and the error is returned.
func (s *Scene) Render() error {
	var frame FrameID
	if s.looping {
		if s.pending != 0 {
			s.scheduler.CancelFrame(s.pending)
		}
		frame = s.scheduler.RequestFrame(s.Render)
		s.pending = frame
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	err := s.clear()

	now := s.clock()
	if s.looping && !s.lastTick.IsZero() {
		if dt := now.Sub(s.lastTick); dt > 0 {
			s.fps = float64(time.Second) / float64(dt)
		}
	}
	s.lastTick = now

	if err == nil {
		if s.debug {
			stats.clearTime = time.Since(t0)
			t0 = time.Now()
		}
		s.Fire(NewEvent(s, EventDraw, Position{}))
		if s.debug {
			stats.drawEventTime = time.Since(t0)
			t0 = time.Now()
		}
		err = renderNode(s, s.surface)
	}

	if err != nil {
		if frame != 0 {
			s.scheduler.CancelFrame(frame)
			s.pending = 0
		}
		s.looping = false
		Logger().Error("draw pass failed", "error", err)
		return err
	}

	if s.debug {
		stats.renderTime = time.Since(t0)
		stats.nodeCount = countNodes(s)
		s.debugLog(stats)
	}
	return nil
}

// clear erases the surface and paints the background fill, if any.
func (s *Scene) clear() error {
	s.surface.Clear()
	if s.options.Fill == "" {
		return nil
	}
	col, err := ParseColor(s.options.Fill)
	if err != nil {
		return err
	}
	s.surface.FillBackground(col)
	return nil
}

// StartLoop renders a frame and keeps rendering one per scheduler frame
// until StopLoop is called or a draw fails.
func (s *Scene) StartLoop() error {
	s.looping = true
	return s.Render()
}

// StopLoop stops rendering and resets the FPS estimate. The already
// requested frame is cancelled, so no further frame runs.
func (s *Scene) StopLoop() {
	s.looping = false
	s.fps = 0
	if s.pending != 0 {
		s.scheduler.CancelFrame(s.pending)
		s.pending = 0
	}
}

// IsLooping reports whether the scene renders every frame.
func (s *Scene) IsLooping() bool {
	return s.looping
}

// FPS returns the instantaneous frame rate measured between the last two
// looped frames, or 0 when not looping.
func (s *Scene) FPS() float64 {
	return s.fps
}

// Hide makes the surface invisible.
func (s *Scene) Hide() {
	s.surface.SetVisible(false)
}

// Show makes the surface visible again.
func (s *Scene) Show() {
	s.surface.SetVisible(true)
}

// SetCursor changes the pointer cursor over the surface. An empty cursor
// means CursorDefault.
func (s *Scene) SetCursor(cursor string) {
	if cursor == "" {
		cursor = CursorDefault
	}
	s.surface.SetCursor(cursor)
}

// Surface returns the surface the scene draws into.
func (s *Scene) Surface() Surface {
	return s.surface
}

// Width returns the surface width in pixels.
func (s *Scene) Width() int {
	return s.surface.Width()
}

// Height returns the surface height in pixels.
func (s *Scene) Height() int {
	return s.surface.Height()
}

// Center returns the center of the surface as measured at construction.
func (s *Scene) Center() Position {
	return s.center
}

// RandomPosition returns a uniformly random position within the surface.
func (s *Scene) RandomPosition() Position {
	return Pos(rand.Float64()*float64(s.Width()), rand.Float64()*float64(s.Height()))
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings and per-frame timings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
