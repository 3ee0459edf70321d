// Pencil-demo opens a window with a few polygons that react to the pointer.
//
// Hover a shape to highlight it and drag it around. Click to toggle its
// outline and scroll over it to cycle its color. Clicking the background
// recenters the star.
//
// Settings come from PENCIL_* environment variables (see internal/config).
// Set PENCIL_SCRIPT to a JSON test script to replay it instead of reading
// the mouse.
package main

import (
	"log/slog"
	"math"
	"os"

	"github.com/phanxgames/pencil"
	"github.com/phanxgames/pencil/ebitenhost"
	"github.com/phanxgames/pencil/internal/config"
)

var palette = []string{"tomato", "gold", "mediumseagreen", "dodgerblue", "orchid"}

// shape is a draggable polygon cycling through the palette.
type shape struct {
	poly  *pencil.Polygon
	color int
}

// dragging is the shape being dragged and grab the pointer offset from its
// anchor.
var (
	dragging *shape
	grab     pencil.Position
)

func newShape(points []pencil.Position, color int) (*shape, error) {
	p, err := pencil.NewPolygon(points,
		pencil.WithFill(palette[color]),
		pencil.WithCursor(pencil.CursorPointer),
	)
	if err != nil {
		return nil, err
	}
	sh := &shape{poly: p, color: color}
	opts := p.Options()

	p.On(pencil.EventHover, func(*pencil.Event) { opts.Opacity = 0.75 })
	p.On(pencil.EventLeave, func(*pencil.Event) { opts.Opacity = 1 })
	p.On(pencil.EventMouseDown, func(e *pencil.Event) {
		dragging = sh
		grab = e.Position.Subtract(p.Position())
	})
	p.On(pencil.EventClick, func(e *pencil.Event) {
		if opts.Stroke == "" {
			opts.Stroke, opts.StrokeWidth = "white", 3
		} else {
			opts.Stroke = ""
		}
		e.Stop()
	})
	p.On(pencil.EventScrollDown, func(*pencil.Event) { sh.cycle(1) })
	p.On(pencil.EventScrollUp, func(*pencil.Event) { sh.cycle(-1) })
	return sh, nil
}

func (sh *shape) cycle(step int) {
	sh.color = (sh.color + step + len(palette)) % len(palette)
	sh.poly.Options().Fill = palette[sh.color]
}

// regular returns the vertices of a regular polygon. With skip > 1 the
// vertices are visited out of order, which draws a star.
func regular(center pencil.Position, radius float64, sides, skip int) []pencil.Position {
	pts := make([]pencil.Position, sides)
	for i := range pts {
		a := 2*math.Pi*float64(i*skip)/float64(sides) - math.Pi/2
		pts[i] = center.Translate(radius*math.Cos(a), radius*math.Sin(a))
	}
	return pts
}

func centroid(pts []pencil.Position) pencil.Position {
	var c pencil.Position
	for _, p := range pts {
		c = c.Add(p)
	}
	n := float64(len(pts))
	return pencil.Pos(c.X/n, c.Y/n)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	pencil.SetLogger(logger)

	host := ebitenhost.New(ebitenhost.Config{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		ShowFPS: cfg.Debug,
	})
	scene, err := pencil.NewScene(host.SceneConfig(),
		pencil.WithFill(cfg.Fill),
		pencil.WithCursor(cfg.Cursor),
	)
	if err != nil {
		slog.Error("create scene", "error", err)
		os.Exit(1)
	}
	defer scene.Close()
	scene.SetDebugMode(cfg.Debug)

	w, h := float64(cfg.Width), float64(cfg.Height)
	outlines := [][]pencil.Position{
		{pencil.Pos(w*0.1, h*0.7), pencil.Pos(w*0.3, h*0.7), pencil.Pos(w*0.2, h*0.45)},
		{pencil.Pos(w*0.4, h*0.5), pencil.Pos(w*0.6, h*0.5), pencil.Pos(w*0.6, h*0.75), pencil.Pos(w*0.4, h*0.75)},
		regular(pencil.Pos(w*0.8, h*0.6), h*0.12, 6, 1),
	}
	for i, pts := range outlines {
		sh, err := newShape(pts, i)
		if err != nil {
			slog.Error("create shape", "error", err)
			os.Exit(1)
		}
		scene.Add(sh.poly)
	}
	star, err := newShape(regular(scene.Center(), h*0.15, 5, 2), 3)
	if err != nil {
		slog.Error("create shape", "error", err)
		os.Exit(1)
	}
	scene.Add(star.poly)

	scene.On(pencil.EventMouseMove, func(e *pencil.Event) {
		if dragging != nil {
			dragging.poly.SetPosition(e.Position.Subtract(grab))
		}
	})
	scene.On(pencil.EventMouseUp, func(*pencil.Event) { dragging = nil })
	scene.On(pencil.EventClick, func(e *pencil.Event) {
		if e.Target == pencil.Node(scene) {
			p := star.poly
			p.SetPosition(p.Position().Add(scene.Center().Subtract(centroid(p.Points()))))
		}
	})

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			slog.Error("read test script", "error", err)
			os.Exit(1)
		}
		runner, err := pencil.LoadTestScript(data)
		if err != nil {
			slog.Error("load test script", "error", err)
			os.Exit(1)
		}
		runner.ScreenshotDir = cfg.ScreenshotDir
		host.SetTestRunner(runner, scene)
	}

	if err := ebitenhost.Run(scene, host); err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}
