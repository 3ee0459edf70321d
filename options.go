package pencil

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Options holds the drawing options shared by every node.
type Options struct {
	Fill        string  // fill color, "" for none
	Stroke      string  // stroke color, "" for none
	StrokeWidth float64 // stroke width in pixels
	Opacity     float64 // 0 (invisible) to 1 (opaque)
	Cursor      string  // cursor shown while hovered, "" for the scene default
	Hidden      bool    // hidden nodes are neither drawn nor hit
}

// Option configures Options at construction time.
type Option func(*Options)

// WithFill sets the fill color.
func WithFill(color string) Option {
	return func(o *Options) { o.Fill = color }
}

// WithStroke sets the stroke color and width.
func WithStroke(color string, width float64) Option {
	return func(o *Options) {
		o.Stroke = color
		o.StrokeWidth = width
	}
}

// WithStrokeWidth sets the stroke width without changing the stroke color.
func WithStrokeWidth(width float64) Option {
	return func(o *Options) { o.StrokeWidth = width }
}

// WithOpacity sets the opacity. Values are clamped to [0, 1].
func WithOpacity(opacity float64) Option {
	return func(o *Options) { o.Opacity = clamp01(opacity) }
}

// WithCursor sets the cursor shown while the node is hovered.
func WithCursor(cursor string) Option {
	return func(o *Options) { o.Cursor = cursor }
}

// WithHidden hides the node.
func WithHidden() Option {
	return func(o *Options) { o.Hidden = true }
}

func defaultOptions() Options {
	return Options{StrokeWidth: 1, Opacity: 1}
}

func applyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// isHex reports whether s holds only hexadecimal digits. gg.Hex maps
// invalid digits to black instead of failing.
func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseColor converts a CSS-like color string into a gg.RGBA.
// Accepted forms are "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" and CSS color
// names ("tomato", "steelblue"...). "transparent" is fully transparent.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		switch len(s) - 1 {
		case 3, 4, 6, 8:
			if isHex(s[1:]) {
				return gg.Hex(s), nil
			}
		}
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	name := strings.ToLower(s)
	if name == "transparent" {
		return gg.RGBA{}, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return gg.FromColor(c), nil
}
