package easel

import (
	"errors"
	"fmt"
)

// ErrNoSelection is returned by operations that need a selected rectangle
// when none is selected.
var ErrNoSelection = errors.New("easel: no rectangle selected")

// CopySelection writes the selected rectangle to the system clipboard as
// "x,y,width,height" in canvas units.
func (e *Editor) CopySelection() error {
	r, ok := e.board.Get(e.selected)
	if e.selected == 0 || !ok {
		return ErrNoSelection
	}
	text := fmt.Sprintf("%g,%g,%g,%g", r.X, r.Y, r.Width, r.Height)
	if err := e.clipboardWrite(text); err != nil {
		return fmt.Errorf("copy rect %d: %w", e.selected, err)
	}
	e.debugf("copied rect %d: %s", e.selected, text)
	return nil
}
