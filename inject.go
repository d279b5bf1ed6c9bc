package easel

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthWheel
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used, identical to real mouse input.
type syntheticEvent struct {
	kind   syntheticKind
	pos    Vec2
	button MouseButton
	wheel  float64
}

func (e *Editor) inject(ev syntheticEvent) {
	e.injectQueue = append(e.injectQueue, ev)
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's Update.
func (e *Editor) InjectPress(x, y float64) {
	e.inject(syntheticEvent{kind: synthPress, pos: Vec2{x, y}, button: MouseButtonLeft})
}

// InjectMove queues a pointer move with the left button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (e *Editor) InjectMove(x, y float64) {
	e.inject(syntheticEvent{kind: synthMove, pos: Vec2{x, y}, button: MouseButtonLeft})
}

// InjectRelease queues a release at the given screen coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.inject(syntheticEvent{kind: synthRelease, pos: Vec2{x, y}, button: MouseButtonLeft})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectRightClick queues a secondary-button press and release. Consumes two
// frames.
func (e *Editor) InjectRightClick(x, y float64) {
	e.inject(syntheticEvent{kind: synthPress, pos: Vec2{x, y}, button: MouseButtonRight})
	e.inject(syntheticEvent{kind: synthRelease, pos: Vec2{x, y}, button: MouseButtonRight})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY) preceded by a final move there. Minimum frames is 2.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		e.InjectMove(x, y)
	}
	e.InjectMove(toX, toY)
	e.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel event; dy > 0 zooms in.
func (e *Editor) InjectWheel(dy float64) {
	e.inject(syntheticEvent{kind: synthWheel, wheel: dy})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the dispatch methods. Returns true if an event was consumed (real
// mouse input should be skipped).
func (e *Editor) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	held := ButtonPrimary
	if evt.button == MouseButtonRight {
		held = ButtonSecondary
	}
	ev := PointerEvent{Pos: evt.pos, Button: evt.button, Buttons: held}

	switch evt.kind {
	case synthPress:
		e.PointerDown(ev)
	case synthMove:
		e.PointerMove(ev)
	case synthRelease:
		ev.Buttons = 0
		e.PointerUp(ev)
	case synthWheel:
		e.Wheel(evt.wheel)
	}
	return true
}
