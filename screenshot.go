package pencil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Screenshot writes the current surface to dir as a PNG named after the
// scene clock and label, and returns the file path. A numeric suffix keeps
// an existing file from being overwritten. Only Canvas surfaces
// can be captured.
func (s *Scene) Screenshot(dir, label string) (string, error) {
	canvas, ok := s.surface.(*Canvas)
	if !ok {
		return "", errors.New("pencil: screenshot: surface is not a canvas")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pencil: screenshot: mkdir %s: %w", dir, err)
	}
	stamp := s.clock().Format("20060102_150405")
	base := filepath.Join(dir, stamp+"_"+sanitizeLabel(label))
	path := base + ".png"
	for n := 2; fileExists(path); n++ {
		path = fmt.Sprintf("%s_%d.png", base, n)
	}
	if err := canvas.SavePNG(path); err != nil {
		return "", fmt.Errorf("pencil: screenshot: %w", err)
	}
	return path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
