package pencil

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays a scripted input session against a scene, one step per
// frame, for automated visual testing.
type TestRunner struct {
	// ScreenshotDir receives the PNGs of "screenshot" steps.
	ScreenshotDir string

	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	shots     []string
}

// LoadTestScript parses a JSON test script. Supported actions are move,
// press, release, click, wheel, drag, wait and screenshot.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "press", "release", "click", "wheel", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{ScreenshotDir: "screenshots", steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Screenshots returns the paths written so far.
func (r *TestRunner) Screenshots() []string {
	return r.shots
}

// Step advances the runner by one frame: it delivers one pending injected
// event if any, otherwise executes the next script step.
func (r *TestRunner) Step(s *Scene, in *Injector) error {
	if r.done {
		return nil
	}
	if in.Step() {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		path, err := s.Screenshot(r.ScreenshotDir, st.Label)
		if err != nil {
			return err
		}
		r.shots = append(r.shots, path)
	case "move":
		in.Move(st.X, st.Y)
	case "press":
		in.Press(st.X, st.Y)
	case "release":
		in.Release(st.X, st.Y)
	case "click":
		in.Click(st.X, st.Y)
	case "wheel":
		in.Wheel(st.X, st.Y, st.DeltaY)
	case "drag":
		in.Drag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Steps, 1))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
	return nil
}
