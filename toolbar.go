package easel

import "unicode/utf8"

const (
	toolbarInset    = 10
	toolbarGap      = 4
	buttonHeight    = 20
	buttonPadding   = 6
	debugGlyphWidth = 6 // ebitenutil debug font advance
)

// ToolbarAction is what a toolbar button does when pressed.
type ToolbarAction uint8

const (
	ActionToggleMode ToolbarAction = iota // switch between pan and create mode
	ActionZoomIn                          // one zoom step in
	ActionZoomOut                         // one zoom step out
)

// Button is a laid-out toolbar button in screen space.
type Button struct {
	Label  string
	Bounds Rect
	Action ToolbarAction
}

// ToolbarButtons lays out the toolbar left to right from the top-left corner.
func (e *Editor) ToolbarButtons() []Button {
	modeLabel := "Create Rectangle Mode"
	if e.createMode {
		modeLabel = "Pan Mode"
	}
	specs := [...]struct {
		label  string
		action ToolbarAction
	}{
		{modeLabel, ActionToggleMode},
		{"Zoom In", ActionZoomIn},
		{"Zoom Out", ActionZoomOut},
	}

	buttons := make([]Button, 0, len(specs))
	x := float64(toolbarInset)
	for _, s := range specs {
		w := float64(utf8.RuneCountInString(s.label)*debugGlyphWidth + 2*buttonPadding)
		buttons = append(buttons, Button{
			Label:  s.label,
			Bounds: Rect{X: x, Y: toolbarInset, Width: w, Height: buttonHeight},
			Action: s.action,
		})
		x += w + toolbarGap
	}
	return buttons
}

// toolbarHit returns the button under screen point p.
func (e *Editor) toolbarHit(p Vec2) (Button, bool) {
	for _, b := range e.ToolbarButtons() {
		if b.Bounds.Contains(p.X, p.Y) {
			return b, true
		}
	}
	return Button{}, false
}

func (e *Editor) runToolbarAction(a ToolbarAction) {
	switch a {
	case ActionToggleMode:
		e.ToggleMode()
	case ActionZoomIn:
		e.ZoomIn()
	case ActionZoomOut:
		e.ZoomOut()
	}
}
