package pencil

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// --- Position ---

func TestPositionArithmetic(t *testing.T) {
	p := Pos(3, 4)
	if got := p.Add(Pos(1, 2)); got != Pos(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := p.Subtract(Pos(1, 2)); got != Pos(2, 2) {
		t.Errorf("Subtract = %v, want (2, 2)", got)
	}
	if got := p.Translate(-3, 1); got != Pos(0, 5) {
		t.Errorf("Translate = %v, want (0, 5)", got)
	}
	if p != Pos(3, 4) {
		t.Errorf("receiver was mutated: %v", p)
	}
	if got := p.Clone(); got != p {
		t.Errorf("Clone = %v, want %v", got, p)
	}
	if d := Pos(0, 0).Distance(p); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	tests := []struct {
		p    Position
		want bool
	}{
		{Pos(15, 15), true},
		{Pos(10, 10), true}, // corner
		{Pos(30, 20), true}, // opposite corner
		{Pos(9.9, 15), false},
		{Pos(15, 20.1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBoundsOf(t *testing.T) {
	got := BoundsOf([]Position{Pos(5, -2), Pos(-1, 3), Pos(2, 8)})
	want := Rect{X: -1, Y: -2, Width: 6, Height: 10}
	if got != want {
		t.Errorf("BoundsOf = %+v, want %+v", got, want)
	}
	if got := BoundsOf(nil); got != (Rect{}) {
		t.Errorf("BoundsOf(nil) = %+v, want zero", got)
	}
}

// --- Colors ---

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"#f00", gg.RGBA{R: 1, A: 1}},
		{"#00ff00", gg.RGBA{G: 1, A: 1}},
		{"#0000ff80", gg.RGBA{B: 1, A: 128.0 / 255}},
		{"white", gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"  Black ", gg.RGBA{A: 1}},
		{"transparent", gg.RGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if !closeRGBA(got, tt.want) {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor_Unknown(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "blurple", "#ggg", "#zzzzzz", "#12345g", "#0000ffxz"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", in, err)
		}
	}
}

func TestWithOpacityClamps(t *testing.T) {
	if o := applyOptions(defaultOptions(), []Option{WithOpacity(2)}); o.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", o.Opacity)
	}
	if o := applyOptions(defaultOptions(), []Option{WithOpacity(-1)}); o.Opacity != 0 {
		t.Errorf("Opacity = %v, want 0", o.Opacity)
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := applyOptions(defaultOptions(), []Option{WithFill("red"), WithStroke("blue", 4), WithCursor(CursorMove), WithHidden()})
	want := Options{Fill: "red", Stroke: "blue", StrokeWidth: 4, Opacity: 1, Cursor: CursorMove, Hidden: true}
	if o != want {
		t.Errorf("options = %+v, want %+v", o, want)
	}
	if o := applyOptions(defaultOptions(), []Option{WithStroke("red", 2), WithStrokeWidth(5)}); o.StrokeWidth != 5 || o.Stroke != "red" {
		t.Errorf("WithStrokeWidth: %+v", o)
	}
}

func closeRGBA(a, b gg.RGBA) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
