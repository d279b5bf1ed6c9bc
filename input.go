package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerEvent is a pointer sample in viewport-relative screen coordinates.
type PointerEvent struct {
	Pos Vec2
	// Button is the button that changed state (PointerDown/PointerUp).
	Button MouseButton
	// Buttons is the set of buttons held when the event was sampled.
	Buttons   ButtonMask
	Modifiers KeyModifiers
}

// --- Pointer capture ---

// pointerCapture routes all pointer moves to the active gesture, bypassing
// the move throttle, until released.
type pointerCapture struct {
	released bool
}

// acquireCapture installs a capture and returns its release func. The release
// func is idempotent; every gesture exit path calls it.
func (e *Editor) acquireCapture() func() {
	c := &pointerCapture{}
	e.capture = c
	return func() {
		if c.released {
			return
		}
		c.released = true
		if e.capture == c {
			e.capture = nil
		}
	}
}

// Captured reports whether a gesture currently holds the pointer capture.
func (e *Editor) Captured() bool {
	return e.capture != nil
}

// --- Gesture dispatch ---

// PointerDown starts a gesture. Presses are checked against the toolbar, the
// minimap, the secondary button (delete), the board top-down, and finally
// fall through to create or pan depending on the mode. It reports whether
// the press was consumed.
func (e *Editor) PointerDown(ev PointerEvent) bool {
	if !e.view.measured() {
		return false
	}
	if e.gesture.Kind() != GestureIdle {
		return false
	}
	e.pointer, e.pointerSeen = ev.Pos, true

	if b, ok := e.toolbarHit(ev.Pos); ok {
		if ev.Button == MouseButtonLeft {
			e.runToolbarAction(b.Action)
		}
		return true
	}

	m := e.minimap()
	if m.contains(ev.Pos) {
		if m.viewportBox(e.view).Contains(ev.Pos.X, ev.Pos.Y) {
			g := &DraggingMinimap{Anchor: ev.Pos}
			g.release = e.acquireCapture()
			e.setGesture(g)
			return true
		}
		e.setGesture(&NavigatingMinimap{})
		m.navigate(e.view, ev.Pos)
		return true
	}

	if ev.Button == MouseButtonRight {
		e.DeleteSelection()
		return true
	}
	if ev.Button != MouseButtonLeft {
		return false
	}

	canvas := e.view.ToCanvas(ev.Pos)
	if s, ok := e.board.HitTest(canvas); ok {
		e.setSelected(s.ID)
		e.setGesture(&DraggingRect{
			ID:     s.ID,
			Grab:   canvas.Sub(s.Rect.Origin()),
			Origin: s.Rect.Origin(),
		})
		return true
	}

	if e.createMode {
		e.setGesture(&Creating{
			Anchor: canvas,
			Temp:   Rect{X: canvas.X, Y: canvas.Y},
		})
		return true
	}

	e.setSelected(0)
	e.setGesture(&Panning{Anchor: ev.Pos})
	return true
}

// PointerMove updates the active gesture. Moves closer together than
// Config.MoveThrottle are dropped unless the pointer is captured. Gesture
// updates require the primary button to be held.
func (e *Editor) PointerMove(ev PointerEvent) {
	if !e.view.measured() {
		return
	}
	if e.capture == nil {
		now := e.now()
		if !e.lastMove.IsZero() && now.Sub(e.lastMove) < e.cfg.MoveThrottle {
			return
		}
		e.lastMove = now
	}
	e.pointer, e.pointerSeen = ev.Pos, true

	if !ev.Buttons.Has(ButtonPrimary) {
		return
	}

	switch g := e.gesture.(type) {
	case *Creating:
		g.Temp = RectFromPoints(g.Anchor, e.view.ToCanvas(ev.Pos))
	case *DraggingRect:
		origin := e.view.ToCanvas(ev.Pos).Sub(g.Grab)
		if e.board.MoveTo(g.ID, origin) {
			g.Moved = true
		}
	case *Panning:
		e.view.PanBy(ev.Pos.Sub(g.Anchor))
		g.Anchor = ev.Pos
	case *DraggingMinimap:
		d := ev.Pos.Sub(g.Anchor)
		e.view.PanBy(e.minimap().dragOffset(d, e.view.Zoom()))
		g.Anchor = ev.Pos
	}
}

// PointerUp ends the active gesture wherever the pointer is. A Creating
// gesture commits the rectangle spanned to the release point if it has a
// positive area; everything else is discarded.
func (e *Editor) PointerUp(ev PointerEvent) {
	switch g := e.gesture.(type) {
	case *Creating:
		if e.view.measured() {
			g.Temp = RectFromPoints(g.Anchor, e.view.ToCanvas(ev.Pos))
		}
		if g.Temp.HasArea() {
			id := e.board.Add(g.Temp)
			r, _ := e.board.Get(id)
			e.debugf("create rect %d %+v", id, r)
			e.emit(CanvasEvent{Type: EventRectCreated, ID: id, Rect: r})
		}
	case *DraggingRect:
		if g.Moved {
			if r, ok := e.board.Get(g.ID); ok {
				e.emit(CanvasEvent{Type: EventRectMoved, ID: g.ID, Rect: r})
			}
		}
	}
	e.endGesture()
}

// Wheel zooms one step per event. dy > 0 (scroll up/away) zooms in, dy < 0
// zooms out. The offset is re-clamped for the new zoom.
func (e *Editor) Wheel(dy float64) {
	if !e.view.measured() {
		return
	}
	switch {
	case dy > 0:
		e.view.ZoomIn()
	case dy < 0:
		e.view.ZoomOut()
	}
}

// ContextMenu reports whether the host's context menu should be suppressed.
// It always is: the secondary button is the delete gesture. Ebitengine never
// shows one; hosts that embed the editor in a page call this from their
// contextmenu handler.
func (e *Editor) ContextMenu() bool {
	return true
}

// Cancel aborts the active gesture without committing anything. A dragged
// rectangle returns to where the drag started.
func (e *Editor) Cancel() {
	if g, ok := e.gesture.(*DraggingRect); ok && g.Moved {
		e.board.MoveTo(g.ID, g.Origin)
	}
	e.endGesture()
}

// endGesture releases the capture held by the gesture, if any, and returns
// to Idle.
func (e *Editor) endGesture() {
	if g, ok := e.gesture.(*DraggingMinimap); ok && g.release != nil {
		g.release()
	}
	e.setGesture(&Idle{})
}

// --- Ebitengine polling ---

// mouseState tracks the press edge of the real mouse between ticks.
type mouseState struct {
	down bool
	last Vec2
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// pollInput samples the mouse and wheel and feeds the dispatch methods.
func (e *Editor) pollInput() {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{float64(mx), float64(my)}

	var held ButtonMask
	var button MouseButton
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		held |= ButtonAuxiliary
		button = MouseButtonMiddle
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		held |= ButtonSecondary
		button = MouseButtonRight
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		held |= ButtonPrimary
		button = MouseButtonLeft
	}

	ev := PointerEvent{Pos: pos, Button: button, Buttons: held, Modifiers: readModifiers()}
	ms := &e.mouse

	if pos != ms.last {
		e.PointerMove(ev)
		ms.last = pos
	}

	switch {
	case held != 0 && !ms.down:
		ms.down = true
		e.PointerDown(ev)
	case held == 0 && ms.down:
		ms.down = false
		e.PointerUp(ev)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		e.Wheel(dy)
	}
}
