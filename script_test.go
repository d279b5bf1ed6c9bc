package easel

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "dance"}]}`, `unknown action "dance"`},
		{"unknown key", `{"steps": [{"action": "key", "key": "f13"}]}`, `unknown key "f13"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("LoadScript succeeded")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func runScript(t *testing.T, e *Editor, r *ScriptRunner) {
	t.Helper()
	e.SetScriptRunner(r)
	for i := 0; i < 500 && !r.Done(); i++ {
		e.advance(1.0 / 60)
	}
	if !r.Done() {
		t.Fatal("script did not finish")
	}
}

func TestScriptDrivesEditor(t *testing.T) {
	e := newTestEditor()
	e.ExportDir = t.TempDir()
	e.cfg.ExportScale = 0.01

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "key", "key": "mode"},
		{"action": "drag", "fromX": 100, "fromY": 100, "toX": 200, "toY": 150, "frames": 4},
		{"action": "drag", "fromX": 400, "fromY": 400, "toX": 300, "toY": 300, "frames": 3},
		{"action": "key", "key": "mode"},
		{"action": "click", "x": 150, "y": 120},
		{"action": "export", "label": "two rects"},
		{"action": "rightclick", "x": 600, "y": 600},
		{"action": "wait", "frames": 3}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	runScript(t, e, r)

	if e.Board().Len() != 1 {
		t.Fatalf("board len = %d, want 1", e.Board().Len())
	}
	if got := e.Board().Shapes()[0].Rect; got != (Rect{X: 300, Y: 300, Width: 100, Height: 100}) {
		t.Errorf("remaining rect = %+v", got)
	}
	if len(r.Exported()) != 1 || len(r.Errs()) != 0 {
		t.Errorf("exported = %v, errs = %v", r.Exported(), r.Errs())
	}
	assertPNGCount(t, e.ExportDir, 1)
}

func TestScriptExportErrorIsRecorded(t *testing.T) {
	e := newTestEditor()
	e.cfg.ExportScale = 0

	r, err := LoadScript([]byte(`{"steps": [{"action": "export", "label": "bad"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, e, r)
	if len(r.Errs()) != 1 {
		t.Errorf("errs = %v, want one", r.Errs())
	}
}

func TestScriptWait(t *testing.T) {
	e := newTestEditor()
	r, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 5}]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetScriptRunner(r)
	ticks := 0
	for !r.Done() {
		e.advance(1.0 / 60)
		ticks++
		if ticks > 50 {
			t.Fatal("wait never finished")
		}
	}
	if ticks != 5 {
		t.Errorf("wait took %d ticks, want 5", ticks)
	}
}

func TestScriptHomeKey(t *testing.T) {
	e := newTestEditor()
	r, err := LoadScript([]byte(`{"steps": [{"action": "key", "key": "home"}, {"action": "wait", "frames": 60}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, e, r)
	if got := e.View().ToCanvas(Vec2{500, 400}); !vecApprox(got, Vec2{5000, 5000}) {
		t.Errorf("viewport centre = %v", got)
	}
}
