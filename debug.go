package pencil

import (
	"time"
)

// debugStats holds per-frame timings. Only populated when Scene.debug is true.
type debugStats struct {
	clearTime     time.Duration
	drawEventTime time.Duration
	renderTime    time.Duration
	nodeCount     int
}

// debugLog logs timing stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.clearTime + stats.drawEventTime + stats.renderTime
	Logger().Debug("frame",
		"clear", stats.clearTime,
		"draw_event", stats.drawEventTime,
		"render", stats.renderTime,
		"total", total,
		"nodes", stats.nodeCount,
		"fps", s.fps,
	)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n Node) {
	if depth := treeDepth(n); depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.component().Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Component) {
	if len(c.children) > debugMaxChildCount {
		Logger().Warn("child count exceeds threshold",
			"node", c.Name, "children", len(c.children), "threshold", debugMaxChildCount)
	}
}

// countNodes counts n and all its descendants.
func countNodes(n Node) int {
	count := 1
	for _, child := range n.component().children {
		count += countNodes(child)
	}
	return count
}
