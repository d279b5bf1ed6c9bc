package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input, key commands and exports across
// frames for automated runs. Attach to an Editor via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	exported  []string
	errs      []error
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to an Editor.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "click", "rightclick", "drag", "wheel", "export", "wait":
		case "key":
			if _, ok := scriptKeys[st.Key]; !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// scriptKeys maps "key" step names to editor commands.
var scriptKeys = map[string]Key{
	"mode":    KeyToggleMode,
	"zoomin":  KeyZoomIn,
	"zoomout": KeyZoomOut,
	"delete":  KeyDelete,
	"escape":  KeyCancel,
	"home":    KeyHome,
	"copy":    KeyCopy,
}

// SetScriptRunner attaches a ScriptRunner to the editor. The runner's step
// method is called from Update before input is processed each frame.
func (e *Editor) SetScriptRunner(runner *ScriptRunner) {
	e.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Exported returns the paths written by export steps so far.
func (r *ScriptRunner) Exported() []string {
	return r.exported
}

// Errs returns the errors raised by export steps so far.
func (r *ScriptRunner) Errs() []error {
	return r.errs
}

// step advances the runner by one frame. Called from Editor.Update.
func (r *ScriptRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.done = r.finished(e)
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		e.InjectClick(st.X, st.Y)
	case "rightclick":
		e.InjectRightClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		e.InjectWheel(st.DY)
	case "key":
		e.KeyPress(scriptKeys[st.Key])
	case "export":
		path, err := e.Export(st.Label)
		if err != nil {
			r.errs = append(r.errs, err)
			e.debugf("script export: %v", err)
		} else {
			r.exported = append(r.exported, path)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	r.done = r.finished(e)
}

// finished reports whether every step has run and nothing is left pending.
func (r *ScriptRunner) finished(e *Editor) bool {
	return r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0
}
