package easel

import "testing"

func TestToolbarLabelsFollowMode(t *testing.T) {
	e := newTestEditor()
	tests := []struct {
		create bool
		want   []string
	}{
		{false, []string{"Create Rectangle Mode", "Zoom In", "Zoom Out"}},
		{true, []string{"Pan Mode", "Zoom In", "Zoom Out"}},
	}
	for _, tt := range tests {
		if e.CreateMode() != tt.create {
			e.ToggleMode()
		}
		buttons := e.ToolbarButtons()
		if len(buttons) != len(tt.want) {
			t.Fatalf("create=%v: %d buttons, want %d", tt.create, len(buttons), len(tt.want))
		}
		for i, b := range buttons {
			if b.Label != tt.want[i] {
				t.Errorf("create=%v: button %d = %q, want %q", tt.create, i, b.Label, tt.want[i])
			}
		}
	}
}

func TestToolbarLayoutDoesNotOverlap(t *testing.T) {
	e := newTestEditor()
	buttons := e.ToolbarButtons()
	for i := 1; i < len(buttons); i++ {
		prev, cur := buttons[i-1].Bounds, buttons[i].Bounds
		if cur.X < prev.X+prev.Width {
			t.Errorf("button %d at x=%v overlaps button %d ending at %v", i, cur.X, i-1, prev.X+prev.Width)
		}
		if cur.Y != prev.Y || cur.Height != prev.Height {
			t.Errorf("button %d not aligned: %+v vs %+v", i, cur, prev)
		}
	}
	if first := buttons[0].Bounds; first.X != toolbarInset || first.Y != toolbarInset {
		t.Errorf("first button at %v,%v", first.X, first.Y)
	}
}

func TestToolbarHitMiss(t *testing.T) {
	e := newTestEditor()
	if _, ok := e.toolbarHit(Vec2{500, 500}); ok {
		t.Error("hit outside the toolbar")
	}
	b := e.ToolbarButtons()[2]
	got, ok := e.toolbarHit(Vec2{b.Bounds.X + b.Bounds.Width, b.Bounds.Y + b.Bounds.Height})
	if !ok || got.Action != ActionZoomOut {
		t.Errorf("corner hit = %+v, %v", got, ok)
	}
}
