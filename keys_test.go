package easel

import "testing"

func TestKeyPressCommands(t *testing.T) {
	e := newTestEditor()

	e.KeyPress(KeyToggleMode)
	if !e.CreateMode() {
		t.Error("KeyToggleMode did not enter create mode")
	}
	e.KeyPress(KeyZoomIn)
	e.KeyPress(KeyZoomIn)
	if !approxEqual(e.View().Zoom(), 1.2, epsilon) {
		t.Errorf("zoom = %v, want 1.2", e.View().Zoom())
	}
	e.KeyPress(KeyZoomOut)
	if !approxEqual(e.View().Zoom(), 1.1, epsilon) {
		t.Errorf("zoom = %v, want 1.1", e.View().Zoom())
	}
}

func TestKeyDeleteRemovesSelection(t *testing.T) {
	e := newTestEditor()
	e.Board().Add(Rect{X: 100, Y: 100, Width: 50, Height: 50})
	e.PointerDown(left(120, 120))
	e.PointerUp(release(120, 120, MouseButtonLeft))

	e.KeyPress(KeyDelete)
	if e.Board().Len() != 0 {
		t.Errorf("board len = %d", e.Board().Len())
	}
}

func TestKeyCancelAbortsCreate(t *testing.T) {
	e := newTestEditor()
	e.ToggleMode()
	e.PointerDown(left(100, 100))
	e.PointerMove(left(200, 200))
	e.KeyPress(KeyCancel)
	e.PointerUp(release(200, 200, MouseButtonLeft))
	if e.Board().Len() != 0 {
		t.Errorf("cancelled draw committed %d rects", e.Board().Len())
	}
}

func TestKeyCopyUsesClipboard(t *testing.T) {
	e := newTestEditor()
	var got string
	e.clipboardWrite = func(s string) error { got = s; return nil }
	e.Board().Add(Rect{X: 100, Y: 100, Width: 50, Height: 50})
	e.PointerDown(left(120, 120))
	e.PointerUp(release(120, 120, MouseButtonLeft))

	e.KeyPress(KeyCopy)
	if got != "100,100,50,50" {
		t.Errorf("clipboard = %q", got)
	}
}

func TestKeyExportWritesFile(t *testing.T) {
	e := newTestEditor()
	e.ExportDir = t.TempDir()
	e.cfg.ExportScale = 0.01

	e.KeyPress(KeyExport)
	assertPNGCount(t, e.ExportDir, 1)
}

func TestScriptKeysAreBound(t *testing.T) {
	for name, k := range scriptKeys {
		if k > KeyExport {
			t.Errorf("script key %q maps to unknown command %d", name, k)
		}
	}
}
