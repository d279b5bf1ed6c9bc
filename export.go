package easel

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const exportFontSize = 12.0

// RenderOverview draws the whole virtual canvas at the given scale (pixels
// per canvas unit): every rectangle in z-order, the selection highlighted,
// and the current viewport outlined.
func (e *Editor) RenderOverview(scale float64) (image.Image, error) {
	dc, err := e.renderOverview(scale)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (e *Editor) renderOverview(scale float64) (*gg.Context, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("render overview: scale %g must be positive", scale)
	}
	w := int(e.cfg.VirtualSize.X * scale)
	h := int(e.cfg.VirtualSize.Y * scale)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("render overview: %dx%d image is empty", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	face, err := exportFace()
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	for _, s := range e.board.Shapes() {
		r := s.Rect
		fill := ColorRect
		if s.ID == e.selected {
			fill = ColorRectSelected
		}
		dc.DrawRectangle(r.X*scale, r.Y*scale, r.Width*scale, r.Height*scale)
		dc.SetColor(fill.toRGBA())
		dc.FillPreserve()
		dc.SetColor(ColorRectBorder.toRGBA())
		dc.SetLineWidth(1)
		dc.Stroke()
		if r.Height*scale >= exportFontSize+4 {
			dc.SetColor(color.Black)
			dc.DrawString(fmt.Sprintf("#%d", s.ID), r.X*scale+2, r.Y*scale+exportFontSize)
		}
	}

	vb := e.view.VisibleBounds()
	if vb.HasArea() {
		dc.DrawRectangle(vb.X*scale, vb.Y*scale, vb.Width*scale, vb.Height*scale)
		dc.SetColor(ColorViewportBox.toRGBA())
		dc.SetLineWidth(2)
		dc.Stroke()
	}
	return dc, nil
}

func exportFace() (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse export font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    exportFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Export writes an overview PNG of the board to ExportDir with a timestamped
// file name and returns the path written.
func (e *Editor) Export(label string) (string, error) {
	dc, err := e.renderOverview(e.cfg.ExportScale)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("export: mkdir %s: %w", e.ExportDir, err)
	}
	stamp := e.now().Format("20060102_150405")
	path := filepath.Join(e.ExportDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	e.debugf("exported %s", path)
	return path, nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
