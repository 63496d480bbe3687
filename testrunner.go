package tapmap

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	Group  uint16  `json:"group,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected pointer events, mode switches and group
// changes across frames for automated interaction tests:
//
//	{"steps": [
//	  {"action": "mode", "mode": "canvas"},
//	  {"action": "group", "group": 2},
//	  {"action": "tap", "x": 120, "y": 80},
//	  {"action": "wait", "frames": 40},
//	  {"action": "move", "x": 300, "y": 200},
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 90, "toY": 90, "frames": 5}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the errors raised by steps so far, joined.
func (r *TestRunner) Err() error {
	return errors.Join(r.errs...)
}

// Step advances the runner by one frame. Call it before src.Poll in the
// game's Update.
func (r *TestRunner) Step(src *EbitenPointerSource, ctrl *ModeController) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		src.InjectTap(st.X, st.Y)
	case "move":
		src.InjectMove(st.X, st.Y)
	case "drag":
		src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "mode":
		if err := ctrl.SetModeString(st.Mode); err != nil {
			r.errs = append(r.errs, fmt.Errorf("step %d: %w", r.cursor-1, err))
		}
	case "group":
		ctrl.SetActiveGroup(Group(st.Group))
	default:
		r.errs = append(r.errs, fmt.Errorf("step %d: unknown action %q", r.cursor-1, st.Action))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && src.Pending() == 0 {
		r.done = true
	}
}
