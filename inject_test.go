package easel

import "testing"

func TestInjectDragQueueLength(t *testing.T) {
	tests := []struct {
		frames int
		want   int
	}{
		{0, 3},
		{2, 3},
		{5, 6},
	}
	for _, tt := range tests {
		e := newTestEditor()
		e.InjectDrag(0, 0, 100, 100, tt.frames)
		if len(e.injectQueue) != tt.want {
			t.Errorf("frames=%d: queue len = %d, want %d", tt.frames, len(e.injectQueue), tt.want)
		}
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	e := newTestEditor()
	e.InjectDrag(0, 0, 100, 50, 4)
	q := e.injectQueue
	if q[0].kind != synthPress || q[len(q)-1].kind != synthRelease {
		t.Fatalf("queue does not start with press and end with release: %+v", q)
	}
	wantMoves := []Vec2{{33.333333, 16.666667}, {66.666667, 33.333333}, {100, 50}}
	for i, w := range wantMoves {
		got := q[i+1].pos
		if q[i+1].kind != synthMove || !approxEqual(got.X, w.X, 1e-5) || !approxEqual(got.Y, w.Y, 1e-5) {
			t.Errorf("move %d = %+v, want %v", i, q[i+1], w)
		}
	}
}

func TestInjectedDragCreatesRect(t *testing.T) {
	e := newTestEditor()
	e.ToggleMode()
	e.InjectDrag(100, 100, 300, 250, 6)

	frames := 0
	for e.advance(1.0 / 60) {
		frames++
	}
	if frames != 7 {
		t.Errorf("consumed %d frames, want 7", frames)
	}
	if e.Board().Len() != 1 {
		t.Fatalf("board len = %d", e.Board().Len())
	}
	if r := e.Board().Shapes()[0].Rect; r != (Rect{X: 100, Y: 100, Width: 200, Height: 150}) {
		t.Errorf("rect = %+v", r)
	}
}

func TestInjectedRightClickDeletes(t *testing.T) {
	e := newTestEditor()
	e.Board().Add(Rect{X: 100, Y: 100, Width: 50, Height: 50})
	e.InjectClick(120, 120)
	e.InjectRightClick(400, 400)
	for e.advance(1.0 / 60) {
	}
	if e.Board().Len() != 0 {
		t.Errorf("board len = %d", e.Board().Len())
	}
}

func TestInjectWheel(t *testing.T) {
	e := newTestEditor()
	e.InjectWheel(1)
	e.InjectWheel(1)
	e.InjectWheel(-1)
	for e.advance(1.0 / 60) {
	}
	if !approxEqual(e.View().Zoom(), 1.1, epsilon) {
		t.Errorf("zoom = %v", e.View().Zoom())
	}
}
