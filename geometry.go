package easel

import "math"

// ScreenToCanvas converts a viewport-relative screen point into canvas space
// for the given pan offset and zoom.
func ScreenToCanvas(p, offset Vec2, zoom float64) Vec2 {
	return Vec2{
		X: (p.X - offset.X) / zoom,
		Y: (p.Y - offset.Y) / zoom,
	}
}

// CanvasToScreen is the forward render transform: Translate(offset) * Scale(zoom).
func CanvasToScreen(p, offset Vec2, zoom float64) Vec2 {
	return Vec2{
		X: p.X*zoom + offset.X,
		Y: p.Y*zoom + offset.Y,
	}
}

// CanvasRectToScreen maps a canvas-space rectangle to screen space.
func CanvasRectToScreen(r Rect, offset Vec2, zoom float64) Rect {
	o := CanvasToScreen(r.Origin(), offset, zoom)
	return Rect{X: o.X, Y: o.Y, Width: r.Width * zoom, Height: r.Height * zoom}
}

// ClampOffset restricts a pan offset so the scaled virtual canvas covers the
// whole viewport. Each axis is clamped to [-(virtual*zoom - viewport), 0].
// When the scaled canvas is narrower than the viewport the lower bound rises
// above zero and the axis pins to 0.
func ClampOffset(o Vec2, zoom float64, viewport, virtual Vec2) Vec2 {
	minX := -(virtual.X*zoom - viewport.X)
	minY := -(virtual.Y*zoom - viewport.Y)
	return Vec2{
		X: math.Min(0, math.Max(minX, o.X)),
		Y: math.Min(0, math.Max(minY, o.Y)),
	}
}

// RectFromPoints returns the normalized rectangle spanned by two corners.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// VisibleCanvas returns the canvas-space rectangle currently shown in a
// viewport of the given pixel size.
func VisibleCanvas(offset Vec2, zoom float64, viewport Vec2) Rect {
	o := ScreenToCanvas(Vec2{}, offset, zoom)
	return Rect{X: o.X, Y: o.Y, Width: viewport.X / zoom, Height: viewport.Y / zoom}
}
