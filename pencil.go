package pencil

import (
	"errors"
	"math"
)

// Position is a 2D coordinate. Positions are plain values; every method
// returns a new Position and never mutates the receiver.
type Position struct {
	X, Y float64
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns p translated by o.
func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y}
}

// Subtract returns p translated by -o.
func (p Position) Subtract(o Position) Position {
	return Position{p.X - o.X, p.Y - o.Y}
}

// Translate returns p moved by (dx, dy).
func (p Position) Translate(dx, dy float64) Position {
	return Position{p.X + dx, p.Y + dy}
}

// Clone returns a copy of p.
func (p Position) Clone() Position {
	return p
}

// Distance returns the euclidean distance between p and o.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// BoundsOf returns the smallest Rect enclosing every point.
// An empty slice yields the zero Rect.
func BoundsOf(points []Position) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Event names fired by the scene.
const (
	EventMouseDown  = "mousedown"  // raw press, fired on the target before derived logic
	EventMouseMove  = "mousemove"  // raw move
	EventMouseUp    = "mouseup"    // raw release
	EventMouseWheel = "mousewheel" // raw wheel
	EventHover      = "hover"      // pointer entered a node
	EventLeave      = "leave"      // pointer left a node for one that is not its descendant
	EventClick      = "click"      // press then release on the same node, no move in between
	EventScrollUp   = "scrollup"
	EventScrollDown = "scrolldown"
	EventZoomIn     = "zoomin"
	EventZoomOut    = "zoomout"
	EventDraw       = "draw" // fired on the scene each frame before the draw pass
)

// Cursor styles understood by the hosts.
const (
	CursorDefault    = "default"
	CursorPointer    = "pointer"
	CursorMove       = "move"
	CursorCrosshair  = "crosshair"
	CursorText       = "text"
	CursorNotAllowed = "not-allowed"
	CursorEWResize   = "ew-resize"
	CursorNSResize   = "ns-resize"
	CursorNESWResize = "nesw-resize"
	CursorNWSEResize = "nwse-resize"
	CursorNone       = "none"
)

var (
	// ErrTooFewVertices is returned when a polygon is built from fewer than 3 points.
	ErrTooFewVertices = errors.New("pencil: a polygon can't have less than 3 vertices")
	// ErrAlreadyBound is returned when binding input to a scene that is already listening.
	ErrAlreadyBound = errors.New("pencil: can't bind input a second time")
	// ErrNoContainer is returned when a scene is created without a container.
	ErrNoContainer = errors.New("pencil: scene needs a container")
	// ErrUnknownColor is returned when a color string can't be parsed.
	ErrUnknownColor = errors.New("pencil: unknown color")
)
