package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	textInsetX = 3
	textInsetY = 1
)

// Draw renders the current frame onto screen.
func (e *Editor) Draw(screen *ebiten.Image) {
	f := e.Frame()
	screen.Fill(ColorBackground.toRGBA())

	// --- Board ---
	for _, r := range f.Rects {
		fillRect(screen, r.Bounds, r.Fill)
		strokeRect(screen, r.Bounds, 1, r.Border)
	}
	if f.Dimensions != nil {
		drawLabel(screen, f.Dimensions)
	}

	// --- Minimap ---
	fillRect(screen, f.Minimap.Bounds, ColorMinimapBG)
	strokeRect(screen, f.Minimap.Bounds, 1, ColorMinimapEdge)
	for _, t := range f.Minimap.Thumbnails {
		fillRect(screen, t, ColorMinimapRect)
	}
	strokeRect(screen, f.Minimap.ViewportBox, 1, ColorViewportBox)

	// --- Toolbar ---
	for _, b := range f.Buttons {
		fillRect(screen, b.Bounds, ColorButton)
		strokeRect(screen, b.Bounds, 1, ColorButtonBorder)
		ebitenutil.DebugPrintAt(screen, b.Label, int(b.Bounds.X)+buttonPadding, int(b.Bounds.Y)+2)
	}

	if f.Tooltip != nil {
		drawLabel(screen, f.Tooltip)
	}
	if e.ShowFPS {
		drawFPS(screen)
	}
}

func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), false)
}

func strokeRect(dst *ebiten.Image, r Rect, width float32, c Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, c.toRGBA(), false)
}

func drawLabel(dst *ebiten.Image, l *Label) {
	fillRect(dst, l.Bounds, l.Fill)
	if l.Border.A > 0 {
		strokeRect(dst, l.Bounds, 1, l.Border)
	}
	ebitenutil.DebugPrintAt(dst, l.Text, int(l.Bounds.X)+textInsetX, int(l.Bounds.Y)+textInsetY)
}

// cursorShape maps the frame's cursor hint to an Ebitengine cursor.
func cursorShape(h CursorHint, g GestureKind) ebiten.CursorShapeType {
	switch {
	case g == GesturePanning || g == GestureDraggingRect || g == GestureDraggingMinimap:
		return ebiten.CursorShapeMove
	case h == CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	}
	return ebiten.CursorShapeDefault
}
