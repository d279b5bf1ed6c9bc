package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsWidgetWidth = 100

// drawFPS prints the current FPS and TPS in the top-right corner on a
// semi-transparent backdrop.
func drawFPS(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	box := Rect{X: float64(w - fpsWidgetWidth - toolbarInset), Y: toolbarInset, Width: fpsWidgetWidth, Height: 32}
	fillRect(screen, box, Color{0, 0, 0, 0.5})
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, int(box.X)+textInsetX, int(box.Y)+textInsetY)
}
