package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// homeScrollDuration is how long the Home key takes to glide back to the
// centre of the canvas, in seconds.
const homeScrollDuration = 0.4

// Key identifies an editor keyboard command independent of the backend.
type Key uint8

const (
	KeyToggleMode Key = iota
	KeyZoomIn
	KeyZoomOut
	KeyDelete
	KeyCancel
	KeyHome
	KeyCopy
	KeyExport
)

// KeyPress runs the command bound to k.
func (e *Editor) KeyPress(k Key) {
	switch k {
	case KeyToggleMode:
		e.ToggleMode()
	case KeyZoomIn:
		e.ZoomIn()
	case KeyZoomOut:
		e.ZoomOut()
	case KeyDelete:
		e.DeleteSelection()
	case KeyCancel:
		e.Cancel()
	case KeyHome:
		e.view.ScrollTo(e.cfg.VirtualSize.Scale(0.5), homeScrollDuration, ease.OutQuad)
	case KeyCopy:
		if err := e.CopySelection(); err != nil {
			e.debugf("copy: %v", err)
		}
	case KeyExport:
		if _, err := e.Export("manual"); err != nil {
			e.debugf("export: %v", err)
		}
	}
}

// keyBindings maps Ebitengine keys to editor commands. Ctrl+C is handled
// separately because it shares the C key with mode toggling.
var keyBindings = []struct {
	key ebiten.Key
	cmd Key
}{
	{ebiten.KeyEqual, KeyZoomIn},
	{ebiten.KeyNumpadAdd, KeyZoomIn},
	{ebiten.KeyMinus, KeyZoomOut},
	{ebiten.KeyNumpadSubtract, KeyZoomOut},
	{ebiten.KeyDelete, KeyDelete},
	{ebiten.KeyBackspace, KeyDelete},
	{ebiten.KeyEscape, KeyCancel},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyP, KeyExport},
}

// pollKeys dispatches keys that went down this tick.
func (e *Editor) pollKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if readModifiers()&(ModCtrl|ModMeta) != 0 {
			e.KeyPress(KeyCopy)
		} else {
			e.KeyPress(KeyToggleMode)
		}
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			e.KeyPress(b.cmd)
		}
	}
}
