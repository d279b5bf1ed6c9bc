package easel

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// ErrQuit may be returned from an OnTick hook to end Run cleanly.
var ErrQuit = errors.New("easel: quit")

// game adapts an Editor to ebiten.Game.
type game struct {
	editor *Editor
	onTick func(*Editor) error
}

func (g *game) Update() error {
	g.editor.Update()
	ebiten.SetCursorShape(cursorShape(g.editor.cursorHint(), g.editor.gesture.Kind()))
	if g.onTick != nil {
		return g.onTick(g.editor)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.editor.Draw(screen)
}

// Layout tracks the outside size so the viewport follows window resizes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.editor.SetViewportSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives the editor until the window is
// closed or onTick returns an error. onTick may be nil. Returning ErrQuit
// from onTick ends the loop without an error.
func Run(e *Editor, cfg RunConfig, onTick func(*Editor) error) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.Title == "" {
		cfg.Title = "Easel"
	}
	e.ShowFPS = e.ShowFPS || cfg.ShowFPS

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	defer e.Close()
	err := ebiten.RunGame(&game{editor: e, onTick: onTick})
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
