package easel

// EventSink receives canvas change notifications. When set on an Editor,
// committed changes are forwarded to it (see the ecs package for a Donburi
// adapter).
type EventSink interface {
	EmitEvent(event CanvasEvent)
}

// EventType identifies a kind of canvas change.
type EventType uint8

const (
	EventRectCreated      EventType = iota // a drawn rectangle was committed
	EventRectMoved                         // a drag finished with the rectangle at a new position
	EventRectDeleted                       // a rectangle was removed
	EventSelectionChanged                  // the selected ID changed (ID may be zero)
	EventModeChanged                       // create mode was toggled
)

// CanvasEvent carries the change data for an EventSink.
type CanvasEvent struct {
	Type EventType
	ID   RectID
	Rect Rect
	// CreateMode is valid for EventModeChanged.
	CreateMode bool
}

func (e *Editor) emit(ev CanvasEvent) {
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(ev)
}
