package easel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the X and Y pan offset.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// View is the pan/zoom transform between canvas space and the screen.
//
// The offset is in screen pixels and already includes the zoom factor, so a
// canvas point p lands at p*zoom + offset. Every mutation re-clamps the
// offset with ClampOffset against the current zoom and viewport size.
type View struct {
	offset    Vec2
	zoomSteps int
	unitSteps float64 // zoom steps per 1.0 zoom
	viewport  Vec2
	cfg       Config

	scrollTween *scrollAnim
}

// newView creates a View at zoom 1.0 looking at the canvas origin.
func newView(cfg Config) *View {
	unit := math.Round(1 / cfg.ZoomStep)
	return &View{
		zoomSteps: int(unit),
		unitSteps: unit,
		cfg:       cfg,
	}
}

// Offset returns the current pan offset in screen pixels.
func (v *View) Offset() Vec2 { return v.offset }

// Zoom returns the current zoom factor.
func (v *View) Zoom() float64 {
	return float64(v.zoomSteps) / v.unitSteps
}

// Viewport returns the last known viewport size in pixels.
func (v *View) Viewport() Vec2 { return v.viewport }

// measured reports whether a viewport size has been set.
func (v *View) measured() bool {
	return v.viewport.X > 0 && v.viewport.Y > 0
}

// SetViewport records the viewport size and re-clamps the offset.
func (v *View) SetViewport(w, h float64) {
	if v.viewport.X == w && v.viewport.Y == h {
		return
	}
	v.viewport = Vec2{w, h}
	v.offset = v.clamp(v.offset)
}

// SetOffset sets the pan offset, clamped.
func (v *View) SetOffset(o Vec2) {
	v.offset = v.clamp(o)
}

// PanBy adds a screen-space delta to the offset and clamps the result.
// Stops any running scroll animation.
func (v *View) PanBy(d Vec2) {
	v.stopScroll()
	v.SetOffset(v.offset.Add(d))
}

func (v *View) clamp(o Vec2) Vec2 {
	if !v.measured() {
		return o
	}
	return ClampOffset(o, v.Zoom(), v.viewport, v.cfg.VirtualSize)
}

// ZoomBy changes zoom by n steps, clamped to the configured range, and
// re-clamps the offset for the new zoom. It reports whether zoom changed.
func (v *View) ZoomBy(n int) bool {
	next := v.zoomSteps + n
	next = max(v.cfg.MinZoomSteps, min(v.cfg.MaxZoomSteps, next))
	if next == v.zoomSteps {
		return false
	}
	v.stopScroll()
	v.zoomSteps = next
	v.offset = v.clamp(v.offset)
	return true
}

// ZoomIn increases zoom by one step.
func (v *View) ZoomIn() bool { return v.ZoomBy(1) }

// ZoomOut decreases zoom by one step.
func (v *View) ZoomOut() bool { return v.ZoomBy(-1) }

// ToCanvas converts a screen point to canvas space.
func (v *View) ToCanvas(p Vec2) Vec2 {
	return ScreenToCanvas(p, v.offset, v.Zoom())
}

// ToScreen converts a canvas point to screen space.
func (v *View) ToScreen(p Vec2) Vec2 {
	return CanvasToScreen(p, v.offset, v.Zoom())
}

// VisibleBounds returns the canvas-space rectangle shown in the viewport.
func (v *View) VisibleBounds() Rect {
	return VisibleCanvas(v.offset, v.Zoom(), v.viewport)
}

// centerOffset returns the clamped offset that puts canvas point c at the
// center of the viewport.
func (v *View) centerOffset(c Vec2) Vec2 {
	z := v.Zoom()
	return v.clamp(Vec2{
		X: (-c.X + v.viewport.X/z/2) * z,
		Y: (-c.Y + v.viewport.Y/z/2) * z,
	})
}

// CenterOn immediately pans so canvas point c sits at the viewport center,
// within clamp limits.
func (v *View) CenterOn(c Vec2) {
	v.stopScroll()
	v.offset = v.centerOffset(c)
}

// ScrollTo animates the view toward centering canvas point c over duration
// seconds. Each animation step is clamped.
func (v *View) ScrollTo(c Vec2, duration float32, easeFn ease.TweenFunc) {
	target := v.centerOffset(c)
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.offset.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(v.offset.Y), float32(target.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *View) Scrolling() bool { return v.scrollTween != nil }

func (v *View) stopScroll() { v.scrollTween = nil }

// update advances the scroll animation. Called from Editor.Update.
func (v *View) update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	next := v.offset
	if !v.scrollTween.doneX {
		val, done := v.scrollTween.tweenX.Update(dt)
		next.X = float64(val)
		v.scrollTween.doneX = done
	}
	if !v.scrollTween.doneY {
		val, done := v.scrollTween.tweenY.Update(dt)
		next.Y = float64(val)
		v.scrollTween.doneY = done
	}
	v.offset = v.clamp(next)
	if v.scrollTween.doneX && v.scrollTween.doneY {
		v.scrollTween = nil
	}
}
