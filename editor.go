package easel

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Editor is the top-level object that owns the view, the rectangle board,
// the selection and the active gesture.
//
// All state is mutated from Update (or from direct method calls on the same
// goroutine); the Editor is not safe for concurrent use.
type Editor struct {
	cfg   Config
	view  *View
	board Board
	sink  EventSink
	debug bool

	createMode bool
	selected   RectID
	gesture    Gesture

	// Pointer tracking.
	pointer     Vec2
	pointerSeen bool
	lastMove    time.Time
	now         func() time.Time
	mouse       mouseState

	// Active pointer capture, held by DraggingMinimap.
	capture *pointerCapture

	// Synthetic input and scripted runs.
	injectQueue []syntheticEvent
	runner      *ScriptRunner

	// ExportDir is where Export writes PNG files.
	ExportDir string
	// ShowFPS draws the current FPS/TPS in the top-right corner.
	ShowFPS bool

	clipboardWrite func(string) error
}

// NewEditor creates an editor for the given configuration with an empty
// board, zoom 1.0 and pan mode active.
func NewEditor(cfg Config) *Editor {
	return &Editor{
		cfg:            cfg,
		view:           newView(cfg),
		gesture:        &Idle{},
		now:            time.Now,
		ExportDir:      cfg.ExportDir,
		clipboardWrite: clipboard.WriteAll,
	}
}

// Config returns the editor's configuration.
func (e *Editor) Config() Config { return e.cfg }

// View returns the editor's pan/zoom transform.
func (e *Editor) View() *View { return e.view }

// Board returns the rectangle collection.
func (e *Editor) Board() *Board { return &e.board }

// Gesture returns the active gesture.
func (e *Editor) Gesture() Gesture { return e.gesture }

// Selected returns the selected rectangle ID, or zero.
func (e *Editor) Selected() RectID { return e.selected }

// CreateMode reports whether presses on empty canvas draw rectangles.
func (e *Editor) CreateMode() bool { return e.createMode }

// Pointer returns the last known pointer position in screen space.
func (e *Editor) Pointer() (Vec2, bool) { return e.pointer, e.pointerSeen }

// SetEventSink sets the optional change-notification sink.
func (e *Editor) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, gesture
// transitions and board changes are logged to stderr.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// SetViewportSize records the size of the drawing surface. Until a non-zero
// size is known, pointer and wheel events are ignored.
func (e *Editor) SetViewportSize(w, h float64) {
	e.view.SetViewport(w, h)
}

// Update processes input and advances the view animation. It is called once
// per tick by the run loop.
func (e *Editor) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if !e.advance(dt) {
		e.pollInput()
	}
	e.pollKeys()
}

// advance runs the device-independent part of a tick: the scroll animation,
// the script runner and one injected event. It reports whether an injected
// event was consumed.
func (e *Editor) advance(dt float32) bool {
	e.view.update(dt)
	if e.runner != nil {
		e.runner.step(e)
	}
	return e.processInjectedInput()
}

// setGesture switches the active gesture.
func (e *Editor) setGesture(g Gesture) {
	if e.debug && g.Kind() != e.gesture.Kind() {
		e.debugf("gesture %s -> %s", e.gesture.Kind(), g.Kind())
	}
	e.gesture = g
}

// setSelected changes the selection and notifies the sink when it differs.
func (e *Editor) setSelected(id RectID) {
	if e.selected == id {
		return
	}
	e.selected = id
	e.emit(CanvasEvent{Type: EventSelectionChanged, ID: id})
}

// ToggleMode switches between pan and create mode and clears the selection.
func (e *Editor) ToggleMode() {
	e.createMode = !e.createMode
	e.setSelected(0)
	e.emit(CanvasEvent{Type: EventModeChanged, CreateMode: e.createMode})
}

// ZoomIn increases zoom by one step and re-clamps the offset.
func (e *Editor) ZoomIn() { e.view.ZoomIn() }

// ZoomOut decreases zoom by one step and re-clamps the offset.
func (e *Editor) ZoomOut() { e.view.ZoomOut() }

// DeleteSelection removes the selected rectangle, if any, and clears the
// selection. It reports whether a rectangle was removed.
func (e *Editor) DeleteSelection() bool {
	id := e.selected
	if id == 0 {
		return false
	}
	r, ok := e.board.Remove(id)
	e.setSelected(0)
	if !ok {
		return false
	}
	if d, ok := e.gesture.(*DraggingRect); ok && d.ID == id {
		e.endGesture()
	}
	e.debugf("delete rect %d %+v", id, r)
	e.emit(CanvasEvent{Type: EventRectDeleted, ID: id, Rect: r})
	return true
}

// Close releases any pointer capture and returns the editor to Idle.
func (e *Editor) Close() {
	e.endGesture()
}
