// Package easel is an infinite-feeling rectangle editor for [Ebitengine].
//
// An [Editor] owns a fixed 10000x10000 canvas, a pan/zoom [View] onto it, an
// ordered [Board] of rectangles, a single selection and the active
// [Gesture]. It draws the board, a toolbar, and a minimap with a draggable
// viewport indicator.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	editor := easel.NewEditor(easel.DefaultConfig())
//	easel.Run(editor, easel.RunConfig{Title: "Board", Width: 1280, Height: 800}, nil)
//
// For full control, implement [ebiten.Game] yourself. Report the surface size
// with [Editor.SetViewportSize] from Layout, then call [Editor.Update] and
// [Editor.Draw]:
//
//	type Game struct{ editor *easel.Editor }
//
//	func (g *Game) Update() error        { g.editor.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.editor.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) {
//		g.editor.SetViewportSize(float64(w), float64(h))
//		return w, h
//	}
//
// # Coordinates
//
// Canvas space is the virtual board in canvas units. Screen space is the
// viewport in pixels. A canvas point p appears at p*zoom + offset, where the
// offset already includes the zoom factor. [ScreenToCanvas] and
// [CanvasToScreen] convert between the two and [ClampOffset] keeps the view
// inside the canvas.
//
// # Input
//
// Pointer input arrives through [Editor.PointerDown], [Editor.PointerMove],
// [Editor.PointerUp] and [Editor.Wheel]. Update polls Ebitengine and calls
// them for you; hosts with their own event source can call them directly.
// A press is routed to the toolbar, then the minimap, then the secondary
// button (delete selection), then the topmost rectangle under the pointer,
// and finally to drawing or panning depending on the mode.
//
// Keyboard shortcuts:
//
//	C          toggle pan / create mode
//	= or +     zoom in
//	-          zoom out
//	Delete     delete the selection (Backspace too)
//	Esc        cancel the active gesture
//	Home       scroll back to the canvas centre
//	Ctrl+C     copy the selection as "x,y,width,height"
//	P          export an overview PNG
//
// # Rendering
//
// [Editor.Frame] returns a render-ready projection of the editor that holds
// no references into it, so it can be inspected in tests without a GPU.
// [Editor.Draw] paints that projection with the vector and ebitenutil
// packages.
//
// # Events
//
// Set an [EventSink] with [Editor.SetEventSink] to be told about committed
// changes. The ecs sub-package forwards them into a Donburi world.
//
// # Automation
//
// The Inject methods queue synthetic pointer events, one per frame. A
// [ScriptRunner] built by [LoadScript] sequences clicks, drags, wheel
// notches, key commands and exports from a JSON document:
//
//	{"steps": [
//	  {"action": "key", "key": "mode"},
//	  {"action": "drag", "fromX": 100, "fromY": 100, "toX": 300, "toY": 200, "frames": 10},
//	  {"action": "export", "label": "after-draw"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package easel
