package easel

import (
	"errors"
	"testing"
)

func TestCopySelectionFormat(t *testing.T) {
	e := newTestEditor()
	var got string
	e.clipboardWrite = func(s string) error { got = s; return nil }
	e.Board().Add(Rect{X: 12.5, Y: 40, Width: 100, Height: 0.25})
	e.setSelected(1)

	if err := e.CopySelection(); err != nil {
		t.Fatalf("CopySelection: %v", err)
	}
	if got != "12.5,40,100,0.25" {
		t.Errorf("clipboard = %q", got)
	}
}

func TestCopySelectionNoSelection(t *testing.T) {
	e := newTestEditor()
	e.clipboardWrite = func(string) error {
		t.Fatal("clipboard written without a selection")
		return nil
	}
	if err := e.CopySelection(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("err = %v, want ErrNoSelection", err)
	}
}

func TestCopySelectionWrapsClipboardError(t *testing.T) {
	e := newTestEditor()
	boom := errors.New("no clipboard")
	e.clipboardWrite = func(string) error { return boom }
	e.Board().Add(Rect{Width: 1, Height: 1})
	e.setSelected(1)

	err := e.CopySelection()
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}
