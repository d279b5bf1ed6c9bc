package easel

// GestureKind names the active pointer gesture.
type GestureKind uint8

const (
	GestureIdle              GestureKind = iota // no button held
	GesturePanning                              // dragging empty canvas
	GestureCreating                             // drawing a new rectangle
	GestureDraggingRect                         // moving the selected rectangle
	GestureNavigatingMinimap                    // pressed inside the minimap
	GestureDraggingMinimap                      // dragging the minimap viewport box
)

var gestureNames = [...]string{
	GestureIdle:              "idle",
	GesturePanning:           "panning",
	GestureCreating:          "creating",
	GestureDraggingRect:      "dragging-rect",
	GestureNavigatingMinimap: "navigating-minimap",
	GestureDraggingMinimap:   "dragging-minimap",
}

func (k GestureKind) String() string {
	if int(k) < len(gestureNames) {
		return gestureNames[k]
	}
	return "unknown"
}

// Gesture is the single in-flight pointer interaction. Exactly one value is
// active at a time; each variant carries only the transients it needs, so
// returning to Idle drops all of them.
type Gesture interface {
	Kind() GestureKind
}

// Idle is the resting gesture.
type Idle struct{}

// Panning drags the view. Anchor is the last processed screen position.
type Panning struct {
	Anchor Vec2
}

// Creating draws a new rectangle. Anchor is the canvas-space press point and
// Temp the normalized rectangle spanned so far.
type Creating struct {
	Anchor Vec2
	Temp   Rect
}

// DraggingRect moves one rectangle. Grab is the pointer-to-origin delta taken
// at press time; Origin is the rectangle's position before the drag.
type DraggingRect struct {
	ID     RectID
	Grab   Vec2
	Origin Vec2
	Moved  bool
}

// NavigatingMinimap is entered by a press inside the minimap outside the
// viewport box. The recenter happens on press; moves are ignored.
type NavigatingMinimap struct{}

// DraggingMinimap drags the minimap viewport box. It holds the pointer
// capture for its lifetime.
type DraggingMinimap struct {
	Anchor  Vec2
	release func()
}

func (*Idle) Kind() GestureKind              { return GestureIdle }
func (*Panning) Kind() GestureKind           { return GesturePanning }
func (*Creating) Kind() GestureKind          { return GestureCreating }
func (*DraggingRect) Kind() GestureKind      { return GestureDraggingRect }
func (*NavigatingMinimap) Kind() GestureKind { return GestureNavigatingMinimap }
func (*DraggingMinimap) Kind() GestureKind   { return GestureDraggingMinimap }
