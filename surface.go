package pencil

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Surface is the drawing backend a Scene renders into.
type Surface interface {
	Width() int
	Height() int
	Resize(width, height int) error

	// Clear erases every pixel to transparent.
	Clear()
	// FillBackground paints every pixel with col, ignoring the current transform.
	FillBackground(col gg.RGBA)

	Push()
	Pop()
	Translate(x, y float64)
	// PushLayer redirects drawing to an offscreen layer that is composited
	// with the given opacity on PopLayer.
	PushLayer(opacity float64)
	PopLayer()

	FillPath(path *gg.Path, col gg.RGBA) error
	StrokePath(path *gg.Path, col gg.RGBA, width float64) error

	SetCursor(cursor string)
	SetVisible(visible bool)
}

// Mounter is implemented by containers that display a surface created for
// them by NewScene.
type Mounter interface {
	Mount(s Surface)
}

// Canvas is a software Surface backed by a gg.Context.
type Canvas struct {
	dc      *gg.Context
	cursor  string
	visible bool
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dc:      gg.NewContext(max(width, 1), max(height, 1)),
		cursor:  CursorDefault,
		visible: true,
	}
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Resize reallocates the pixel buffer. Content is lost.
func (c *Canvas) Resize(width, height int) error {
	return c.dc.Resize(width, height)
}

func (c *Canvas) Clear() { c.dc.Clear() }

func (c *Canvas) FillBackground(col gg.RGBA) { c.dc.ClearWithColor(col) }

func (c *Canvas) Push()                  { c.dc.Push() }
func (c *Canvas) Pop()                   { c.dc.Pop() }
func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

func (c *Canvas) PushLayer(opacity float64) { c.dc.PushLayer(gg.BlendNormal, opacity) }
func (c *Canvas) PopLayer()                 { c.dc.PopLayer() }

// FillPath fills path with col using the current transform.
func (c *Canvas) FillPath(path *gg.Path, col gg.RGBA) error {
	c.replay(path)
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	return c.dc.Fill()
}

// StrokePath strokes path with col using the current transform.
func (c *Canvas) StrokePath(path *gg.Path, col gg.RGBA, width float64) error {
	c.replay(path)
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width)
	return c.dc.Stroke()
}

// replay copies path into the context's current path.
func (c *Canvas) replay(path *gg.Path) {
	c.dc.ClearPath()
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			c.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			c.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			c.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			c.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			c.dc.ClosePath()
		}
	}
}

func (c *Canvas) SetCursor(cursor string) { c.cursor = cursor }

// Cursor returns the cursor style last set on the canvas.
func (c *Canvas) Cursor() string { return c.cursor }

func (c *Canvas) SetVisible(visible bool) { c.visible = visible }

// Visible reports whether the canvas should be presented.
func (c *Canvas) Visible() bool { return c.visible }

// Image returns a copy of the canvas pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
