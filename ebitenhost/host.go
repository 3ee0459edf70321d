// Package ebitenhost displays a pencil scene in an Ebitengine window.
//
// The Host is at once the scene's embedding context, its input source and
// its frame scheduler: input is polled and frames are flushed in Update,
// and the scene's canvas is presented in Draw.
//
//	host := ebitenhost.New(ebitenhost.Config{Title: "demo", Width: 640, Height: 480})
//	scene, err := pencil.NewScene(host.SceneConfig(), pencil.WithFill("#1e1b2d"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	// ... add nodes ...
//	if err := ebitenhost.Run(scene, host); err != nil {
//		log.Fatal(err)
//	}
package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pencil"
)

// Config configures the window.
type Config struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool // draw the actual FPS/TPS in the top-left corner
}

// Host implements pencil.Host, pencil.Mounter and ebiten.Game.
type Host struct {
	cfg    Config
	input  *pencil.Injector
	frames *pencil.FrameQueue
	canvas *pencil.Canvas
	image  *ebiten.Image
	cursor string

	runner      *pencil.TestRunner
	runnerScene *pencil.Scene

	lastX, lastY int
	seen         bool
	closed       bool
}

// New creates a host for a window of the configured size.
func New(cfg Config) *Host {
	return &Host{
		cfg:    cfg,
		input:  pencil.NewInjector(),
		frames: pencil.NewFrameQueue(),
	}
}

// SceneConfig returns a SceneConfig wired to this host.
func (h *Host) SceneConfig() pencil.SceneConfig {
	return pencil.SceneConfig{Host: h, Input: h.input, Scheduler: h.frames}
}

// Bounds returns the window area. The scene always fills the window.
func (h *Host) Bounds() pencil.Rect {
	return pencil.Rect{Width: float64(h.cfg.Width), Height: float64(h.cfg.Height)}
}

// Scroll always returns the origin: a window does not scroll.
func (h *Host) Scroll() pencil.Position {
	return pencil.Position{}
}

// Mount keeps the scene's canvas for presentation. Surfaces other than
// *pencil.Canvas are ignored.
func (h *Host) Mount(s pencil.Surface) {
	if c, ok := s.(*pencil.Canvas); ok {
		h.canvas = c
	}
}

// Injector returns the queue the host feeds polled input into. Events
// enqueued on it reach the scene on the next Update.
func (h *Host) Injector() *pencil.Injector {
	return h.input
}

// SetTestRunner replays r against scene, one step per Update, in place of
// the real mouse. Polling resumes once the script is done.
func (h *Host) SetTestRunner(r *pencil.TestRunner, scene *pencil.Scene) {
	h.runner = r
	h.runnerScene = scene
}

// Close makes the next Update end the game loop.
func (h *Host) Close() {
	h.closed = true
}

// Update polls input, delivers it to the scene and runs the requested frames.
func (h *Host) Update() error {
	if h.closed {
		return ebiten.Termination
	}
	if h.runner != nil && !h.runner.Done() {
		if err := h.runner.Step(h.runnerScene, h.input); err != nil {
			return err
		}
		if h.runner.Done() {
			pencil.Logger().Info("test script done", "screenshots", len(h.runner.Screenshots()))
		}
	} else {
		h.pollInput()
		h.input.Drain()
	}
	return h.frames.Flush()
}

// Draw presents the last rendered frame.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.canvas == nil || !h.canvas.Visible() {
		return
	}
	h.present(screen)
	h.applyCursor(h.canvas.Cursor())
	if h.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout keeps the logical screen at the configured size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}

func (h *Host) present(screen *ebiten.Image) {
	img := h.canvas.Image()
	w, ht := img.Bounds().Dx(), img.Bounds().Dy()
	if h.image == nil || h.image.Bounds().Dx() != w || h.image.Bounds().Dy() != ht {
		if h.image != nil {
			h.image.Deallocate()
		}
		h.image = ebiten.NewImage(w, ht)
	}
	h.image.WritePixels(img.Pix)
	screen.DrawImage(h.image, nil)
}

func (h *Host) applyCursor(cursor string) {
	if cursor == h.cursor {
		return
	}
	h.cursor = cursor
	if cursor == pencil.CursorNone {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetCursorShape(cursorShape(cursor))
}

var buttons = [...]struct {
	ebiten ebiten.MouseButton
	pencil pencil.MouseButton
}{
	{ebiten.MouseButtonLeft, pencil.MouseButtonLeft},
	{ebiten.MouseButtonRight, pencil.MouseButtonRight},
	{ebiten.MouseButtonMiddle, pencil.MouseButtonMiddle},
}

// pollInput turns this tick's cursor, button and wheel state into raw events.
func (h *Host) pollInput() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if !h.seen || x != h.lastX || y != h.lastY {
		h.seen = true
		h.lastX, h.lastY = x, y
		h.input.Enqueue(pencil.RawEvent{Kind: pencil.RawMove, ClientX: fx, ClientY: fy})
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			h.input.Enqueue(pencil.RawEvent{Kind: pencil.RawPress, ClientX: fx, ClientY: fy, Button: b.pencil})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			h.input.Enqueue(pencil.RawEvent{Kind: pencil.RawRelease, ClientX: fx, ClientY: fy, Button: b.pencil})
		}
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		h.input.Enqueue(pencil.RawEvent{Kind: pencil.RawWheel, ClientX: fx, ClientY: fy, DeltaY: wheelDelta(dy)})
	}
}

// wheelDelta converts an Ebitengine wheel offset (positive when scrolling
// up) to the pencil convention (positive when scrolling down).
func wheelDelta(dy float64) float64 {
	return -dy
}

// cursorShape maps a pencil cursor to the closest Ebitengine shape.
func cursorShape(cursor string) ebiten.CursorShapeType {
	switch cursor {
	case pencil.CursorPointer:
		return ebiten.CursorShapePointer
	case pencil.CursorMove:
		return ebiten.CursorShapeMove
	case pencil.CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case pencil.CursorText:
		return ebiten.CursorShapeText
	case pencil.CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	case pencil.CursorEWResize:
		return ebiten.CursorShapeEWResize
	case pencil.CursorNSResize:
		return ebiten.CursorShapeNSResize
	case pencil.CursorNESWResize:
		return ebiten.CursorShapeNESWResize
	case pencil.CursorNWSEResize:
		return ebiten.CursorShapeNWSEResize
	default:
		return ebiten.CursorShapeDefault
	}
}

// Run opens the window, starts the scene loop and blocks until the window
// is closed or a frame fails.
func Run(scene *pencil.Scene, h *Host) error {
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	if h.cfg.Title != "" {
		ebiten.SetWindowTitle(h.cfg.Title)
	}
	if err := scene.StartLoop(); err != nil {
		return err
	}
	pencil.Logger().Info("window opened", "title", h.cfg.Title, "width", h.cfg.Width, "height", h.cfg.Height)
	return ebiten.RunGame(h)
}
