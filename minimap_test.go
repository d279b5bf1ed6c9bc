package easel

import (
	"testing"
	"time"
)

func TestMinimapLayout(t *testing.T) {
	e := newTestEditor()
	got := e.MinimapBounds()
	want := Rect{X: 780, Y: 580, Width: 200, Height: 200}
	if got != want {
		t.Errorf("MinimapBounds = %+v, want %+v", got, want)
	}

	e.SetViewportSize(1280, 720)
	if got := e.MinimapBounds(); got.X != 1060 || got.Y != 500 {
		t.Errorf("MinimapBounds after resize = %+v", got)
	}
}

func TestViewportIndicator(t *testing.T) {
	e := newTestEditor()
	got := e.ViewportIndicator()
	want := Rect{X: 780, Y: 580, Width: 20, Height: 16}
	if !vecApprox(got.Origin(), want.Origin()) ||
		!approxEqual(got.Width, want.Width, 1e-9) || !approxEqual(got.Height, want.Height, 1e-9) {
		t.Errorf("indicator = %+v, want %+v", got, want)
	}

	e.View().ZoomBy(10) // 2.0 halves the visible region
	got = e.ViewportIndicator()
	if !approxEqual(got.Width, 10, 1e-9) || !approxEqual(got.Height, 8, 1e-9) {
		t.Errorf("indicator at zoom 2 = %+v", got)
	}
}

func TestMinimapClickCentersView(t *testing.T) {
	e := newTestEditor()
	mb := e.MinimapBounds()
	centre := Vec2{mb.X + mb.Width/2, mb.Y + mb.Height/2}

	if !e.PointerDown(left(centre.X, centre.Y)) {
		t.Fatal("minimap press not consumed")
	}
	if e.Gesture().Kind() != GestureNavigatingMinimap {
		t.Errorf("gesture = %s, want navigating-minimap", e.Gesture().Kind())
	}
	e.PointerUp(release(centre.X, centre.Y, MouseButtonLeft))

	vp := e.View().Viewport()
	got := e.View().ToCanvas(vp.Scale(0.5))
	if !vecApprox(got, Vec2{5000, 5000}) {
		t.Errorf("viewport centre shows %v, want (5000,5000)", got)
	}
	if !vecApprox(e.View().Offset(), Vec2{-4500, -4600}) {
		t.Errorf("offset = %v, want (-4500,-4600)", e.View().Offset())
	}
}

func TestMinimapClickAtZoom(t *testing.T) {
	e := newTestEditor()
	e.View().ZoomBy(10) // 2.0
	// (2500, 7500) in canvas space.
	e.PointerDown(left(780+50, 580+150))
	e.PointerUp(release(830, 730, MouseButtonLeft))

	got := e.View().ToCanvas(Vec2{500, 400})
	if !vecApprox(got, Vec2{2500, 7500}) {
		t.Errorf("viewport centre shows %v, want (2500,7500)", got)
	}
}

func TestMinimapClickNearCornerClamps(t *testing.T) {
	e := newTestEditor()
	e.PointerDown(left(979, 779))
	e.PointerUp(release(979, 779, MouseButtonLeft))
	if !vecApprox(e.View().Offset(), Vec2{-9000, -9200}) {
		t.Errorf("offset = %v, want far-corner clamp (-9000,-9200)", e.View().Offset())
	}
}

func TestMinimapMovesIgnoredWhileNavigating(t *testing.T) {
	e := newTestEditor()
	e.PointerDown(left(880, 680))
	before := e.View().Offset()
	e.PointerMove(left(850, 650))
	if e.View().Offset() != before {
		t.Errorf("move while navigating changed offset %v -> %v", before, e.View().Offset())
	}
}

func TestMinimapIndicatorDrag(t *testing.T) {
	e := newTestEditor()
	e.View().SetOffset(Vec2{-2000, -1000})
	box := e.ViewportIndicator()
	start := Vec2{box.X + 5, box.Y + 5}

	e.PointerDown(left(start.X, start.Y))
	if e.Gesture().Kind() != GestureDraggingMinimap {
		t.Fatalf("gesture = %s, want dragging-minimap", e.Gesture().Kind())
	}
	if !e.Captured() {
		t.Fatal("indicator drag did not capture the pointer")
	}

	e.PointerMove(left(start.X+10, start.Y+5))
	// -d/minimap*virtual*zoom = -(10,5)/200*10000*1
	want := Vec2{-2000 - 500, -1000 - 250}
	if !vecApprox(e.View().Offset(), want) {
		t.Errorf("offset = %v, want %v", e.View().Offset(), want)
	}

	e.PointerUp(release(start.X+10, start.Y+5, MouseButtonLeft))
	if e.Captured() {
		t.Error("capture held after release")
	}
	if e.Gesture().Kind() != GestureIdle {
		t.Errorf("gesture = %s after release", e.Gesture().Kind())
	}
}

func TestMinimapIndicatorDragScalesWithZoom(t *testing.T) {
	e := newTestEditor()
	e.View().ZoomBy(10) // 2.0
	e.View().SetOffset(Vec2{-4000, -4000})
	box := e.ViewportIndicator()
	start := Vec2{box.X + 2, box.Y + 2}

	e.PointerDown(left(start.X, start.Y))
	e.PointerMove(left(start.X+4, start.Y))
	want := Vec2{-4000 - 4.0/200*10000*2, -4000}
	if !vecApprox(e.View().Offset(), want) {
		t.Errorf("offset = %v, want %v", e.View().Offset(), want)
	}
}

func TestMinimapIndicatorDragClamps(t *testing.T) {
	e := newTestEditor()
	e.View().SetOffset(Vec2{-200, -200})
	box := e.ViewportIndicator()
	start := Vec2{box.X + 10, box.Y + 5}

	e.PointerDown(left(start.X, start.Y))
	e.PointerMove(left(start.X-50, start.Y-50))
	if e.View().Offset() != (Vec2{}) {
		t.Errorf("offset = %v, want clamped (0,0)", e.View().Offset())
	}
}

func TestCapturedMovesBypassThrottle(t *testing.T) {
	e := newTestEditor()
	clk := &stepClock{t: time.Unix(1000, 0)}
	e.now = clk.now
	e.View().SetOffset(Vec2{-2000, -1000})
	box := e.ViewportIndicator()
	x, y := box.X+5, box.Y+5

	e.PointerDown(left(x, y))
	e.PointerMove(left(x+1, y))
	e.PointerMove(left(x+2, y))
	e.PointerMove(left(x+3, y))
	want := Vec2{-2000 - 3*50, -1000}
	if !vecApprox(e.View().Offset(), want) {
		t.Errorf("offset = %v, want %v (captured moves are never throttled)", e.View().Offset(), want)
	}
}

func TestCaptureReleasedOnEveryExit(t *testing.T) {
	exits := []struct {
		name string
		end  func(e *Editor)
	}{
		{"pointer up", func(e *Editor) { e.PointerUp(release(0, 0, MouseButtonLeft)) }},
		{"cancel", (*Editor).Cancel},
		{"close", (*Editor).Close},
	}
	for _, tt := range exits {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor()
			e.View().SetOffset(Vec2{-2000, -1000})
			box := e.ViewportIndicator()
			e.PointerDown(left(box.X+5, box.Y+5))
			if !e.Captured() {
				t.Fatal("no capture after indicator press")
			}
			tt.end(e)
			if e.Captured() {
				t.Error("capture still held")
			}
			if e.Gesture().Kind() != GestureIdle {
				t.Errorf("gesture = %s", e.Gesture().Kind())
			}
		})
	}
}

func TestCaptureReleaseIdempotent(t *testing.T) {
	e := newTestEditor()
	first := e.acquireCapture()
	first()
	second := e.acquireCapture()
	first()
	if !e.Captured() {
		t.Error("stale release dropped a newer capture")
	}
	second()
	second()
	if e.Captured() {
		t.Error("capture held after release")
	}
}
