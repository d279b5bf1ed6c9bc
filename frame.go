package easel

import (
	"fmt"
	"math"
)

const (
	tooltipOffset = 10
	labelHeight   = 16
	labelPadding  = 3
)

// DrawRect is a rectangle ready to draw, in screen space.
type DrawRect struct {
	ID       RectID // zero for the in-progress rectangle
	Bounds   Rect
	Fill     Color
	Border   Color
	Selected bool
	Temp     bool
}

// Label is a boxed text run in screen space.
type Label struct {
	Text   string
	Bounds Rect
	Fill   Color
	Border Color // zero alpha means no border
}

// MinimapFrame is the minimap portion of a Frame.
type MinimapFrame struct {
	Bounds      Rect
	Thumbnails  []Rect
	ViewportBox Rect
}

// CursorHint is the pointer shape the presentation layer should show.
type CursorHint uint8

const (
	CursorGrab      CursorHint = iota // pan mode
	CursorCrosshair                   // create mode
)

// Frame is a render-ready projection of editor state. It holds no
// references into the editor and can be built and inspected without a
// graphics context.
type Frame struct {
	Viewport Vec2
	// Rects are in z-order; the in-progress rectangle, if any, is last.
	// Rectangles entirely outside the viewport are omitted.
	Rects      []DrawRect
	Dimensions *Label // size label above the in-progress rectangle
	Tooltip    *Label // size readout next to the pointer while drawing
	Minimap    MinimapFrame
	Buttons    []Button
	Cursor     CursorHint
}

// Frame builds the current render projection.
func (e *Editor) Frame() Frame {
	v := e.view
	zoom := v.Zoom()
	screen := Rect{Width: v.Viewport().X, Height: v.Viewport().Y}

	f := Frame{
		Viewport: v.Viewport(),
		Buttons:  e.ToolbarButtons(),
		Cursor:   e.cursorHint(),
	}

	for _, s := range e.board.Shapes() {
		b := CanvasRectToScreen(s.Rect, v.Offset(), zoom)
		if !b.Intersects(screen) {
			continue
		}
		fill := ColorRect
		if s.ID == e.selected {
			fill = ColorRectSelected
		}
		f.Rects = append(f.Rects, DrawRect{
			ID:       s.ID,
			Bounds:   b,
			Fill:     fill,
			Border:   ColorRectBorder,
			Selected: s.ID == e.selected,
		})
	}

	if g, ok := e.gesture.(*Creating); ok {
		b := CanvasRectToScreen(g.Temp, v.Offset(), zoom)
		f.Rects = append(f.Rects, DrawRect{
			Bounds: b,
			Fill:   ColorRect,
			Border: ColorRectBorder,
			Temp:   true,
		})
		dims := fmt.Sprintf("%.0f x %.0f", math.Round(g.Temp.Width), math.Round(g.Temp.Height))
		f.Dimensions = &Label{
			Text:   dims,
			Bounds: labelBounds(dims, Vec2{b.X, b.Y - labelHeight}),
			Fill:   ColorLabelBG,
			Border: ColorLabelBorder,
		}
		if p, seen := e.Pointer(); seen {
			tip := fmt.Sprintf("%.0f x %.0f", math.Abs(g.Temp.Width), math.Abs(g.Temp.Height))
			f.Tooltip = &Label{
				Text:   tip,
				Bounds: labelBounds(tip, Vec2{p.X + tooltipOffset, p.Y + tooltipOffset}),
				Fill:   ColorTooltipBG,
			}
		}
	}

	m := e.minimap()
	f.Minimap.Bounds = m.bounds
	f.Minimap.ViewportBox = m.viewportBox(v)
	f.Minimap.Thumbnails = make([]Rect, 0, e.board.Len())
	for _, s := range e.board.Shapes() {
		f.Minimap.Thumbnails = append(f.Minimap.Thumbnails, m.thumbnail(s.Rect))
	}
	return f
}

func (e *Editor) cursorHint() CursorHint {
	if e.createMode {
		return CursorCrosshair
	}
	return CursorGrab
}

// labelBounds sizes a label box for the debug font at the given origin.
func labelBounds(text string, at Vec2) Rect {
	return Rect{
		X:      at.X,
		Y:      at.Y,
		Width:  float64(len(text)*debugGlyphWidth + 2*labelPadding),
		Height: labelHeight,
	}
}
