package pencil

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func square() *Polygon {
	p, err := NewPolygon([]Position{Pos(0, 0), Pos(10, 0), Pos(10, 10), Pos(0, 10)})
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewPolygon_TooFewVertices(t *testing.T) {
	for n := 0; n < 3; n++ {
		pts := make([]Position, n)
		_, err := NewPolygon(pts)
		if !errors.Is(err, ErrTooFewVertices) {
			t.Fatalf("%d points: error = %v, want ErrTooFewVertices", n, err)
		}
		if want := "only " + string(rune('0'+n)) + " given"; !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestNewPolygon_CopiesPoints(t *testing.T) {
	pts := []Position{Pos(1, 1), Pos(5, 1), Pos(3, 4)}
	p, err := NewPolygon(pts)
	if err != nil {
		t.Fatal(err)
	}
	pts[0] = Pos(100, 100)
	got := p.Points()
	if got[0] != Pos(1, 1) || got[1] != Pos(5, 1) || got[2] != Pos(3, 4) {
		t.Errorf("Points = %v", got)
	}
	got[1] = Pos(-1, -1)
	if p.Points()[1] != Pos(5, 1) {
		t.Error("Points should return a copy")
	}
	if p.Position() != Pos(1, 1) {
		t.Errorf("Position = %v, want first vertex", p.Position())
	}
}

func TestPolygonIsHover_Square(t *testing.T) {
	p := square()
	tests := []struct {
		p    Position
		want bool
	}{
		{Pos(5, 5), true},
		{Pos(1, 9), true},
		{Pos(20, 20), false},
		{Pos(-1, 5), false},
		{Pos(5, 11), false},
	}
	for _, tt := range tests {
		if got := p.IsHover(tt.p); got != tt.want {
			t.Errorf("IsHover(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPolygonIsHover_ClosingEdge(t *testing.T) {
	// The only edge the ray from (5,3) crosses is the one from the last
	// vertex back to the first.
	p, err := NewPolygon([]Position{Pos(10, 0), Pos(0, 0), Pos(5, 10)})
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsHover(Pos(5, 3)) {
		t.Error("point inside the triangle should hit")
	}
	if p.IsHover(Pos(9, 8)) {
		t.Error("point outside the triangle but inside its bounds should miss")
	}
}

func TestPolygonIsHover_Concave(t *testing.T) {
	// U shape opening upward.
	p, err := NewPolygon([]Position{
		Pos(0, 0), Pos(3, 0), Pos(3, 7), Pos(7, 7), Pos(7, 0), Pos(10, 0), Pos(10, 10), Pos(0, 10),
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.IsHover(Pos(5, 3)) {
		t.Error("notch should miss")
	}
	if !p.IsHover(Pos(1, 3)) || !p.IsHover(Pos(5, 9)) {
		t.Error("arms and base should hit")
	}
}

func TestPolygonIsHover_Hidden(t *testing.T) {
	p := square()
	p.Options().Hidden = true
	if p.IsHover(Pos(5, 5)) {
		t.Error("hidden polygon should not be hit")
	}
}

func TestPolygonTrace(t *testing.T) {
	p, err := NewPolygon([]Position{Pos(10, 10), Pos(20, 10), Pos(15, 20)})
	if err != nil {
		t.Fatal(err)
	}
	path := gg.NewPath()
	path.MoveTo(0, 0)
	p.Trace(path)

	els := path.Elements()
	if len(els) != 5 {
		t.Fatalf("elements = %d, want 5 (move, 3 lines, close)", len(els))
	}
	want := []gg.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	for i, w := range want {
		l, ok := els[i+1].(gg.LineTo)
		if !ok {
			t.Fatalf("element %d = %T, want LineTo", i+1, els[i+1])
		}
		if l.Point != w {
			t.Errorf("LineTo %d = %v, want %v (relative to the anchor)", i, l.Point, w)
		}
	}
	if _, ok := els[4].(gg.Close); !ok {
		t.Errorf("last element = %T, want Close", els[4])
	}

	empty := gg.NewPath()
	p.Trace(empty)
	if n := len(empty.Elements()); n != 4 {
		t.Errorf("trace into an empty path: elements = %d, want 4", n)
	}
}

func TestPolygonSetPosition(t *testing.T) {
	p := square()
	p.SetPosition(Pos(100, 50))
	if p.Position() != Pos(100, 50) {
		t.Errorf("Position = %v", p.Position())
	}
	if got := p.Points()[2]; got != Pos(110, 60) {
		t.Errorf("third vertex = %v, want (110, 60)", got)
	}
	if !p.IsHover(Pos(105, 55)) || p.IsHover(Pos(5, 5)) {
		t.Error("hit area should follow the polygon")
	}
	if b := p.Bounds(); b != (Rect{X: 100, Y: 50, Width: 10, Height: 10}) {
		t.Errorf("Bounds = %+v", b)
	}
}
