package easel

// minimapLayout is the screen placement of the minimap for one viewport size.
type minimapLayout struct {
	bounds Rect // screen space
	scale  Vec2 // minimap pixels per canvas unit
	cfg    *Config
}

// layoutMinimap pins the minimap to the bottom-right corner of the viewport.
func layoutMinimap(cfg *Config, viewport Vec2) minimapLayout {
	size := cfg.MinimapSize
	return minimapLayout{
		bounds: Rect{
			X:      viewport.X - cfg.MinimapMargin - size.X,
			Y:      viewport.Y - cfg.MinimapMargin - size.Y,
			Width:  size.X,
			Height: size.Y,
		},
		scale: Vec2{size.X / cfg.VirtualSize.X, size.Y / cfg.VirtualSize.Y},
		cfg:   cfg,
	}
}

// contains reports whether screen point p is over the minimap.
func (m minimapLayout) contains(p Vec2) bool {
	return m.bounds.Contains(p.X, p.Y)
}

// thumbnail maps a canvas rectangle into the minimap, in screen space.
func (m minimapLayout) thumbnail(r Rect) Rect {
	return Rect{
		X:      m.bounds.X + r.X*m.scale.X,
		Y:      m.bounds.Y + r.Y*m.scale.Y,
		Width:  r.Width * m.scale.X,
		Height: r.Height * m.scale.Y,
	}
}

// viewportBox returns the screen rectangle of the minimap's view indicator:
// the visible canvas region mapped through the minimap scale.
func (m minimapLayout) viewportBox(v *View) Rect {
	return m.thumbnail(v.VisibleBounds())
}

// toCanvas converts a screen point over the minimap to canvas space.
func (m minimapLayout) toCanvas(p Vec2) Vec2 {
	local := p.Sub(m.bounds.Origin())
	return Vec2{local.X / m.scale.X, local.Y / m.scale.Y}
}

// navigate recenters the view on the canvas point under screen point p.
func (m minimapLayout) navigate(v *View, p Vec2) {
	v.CenterOn(m.toCanvas(p))
}

// dragOffset converts a pointer displacement over the minimap into the pan
// offset change that moves the viewport box by the same amount.
func (m minimapLayout) dragOffset(d Vec2, zoom float64) Vec2 {
	return Vec2{
		X: -d.X / m.cfg.MinimapSize.X * m.cfg.VirtualSize.X * zoom,
		Y: -d.Y / m.cfg.MinimapSize.Y * m.cfg.VirtualSize.Y * zoom,
	}
}

// MinimapBounds returns the minimap's screen rectangle.
func (e *Editor) MinimapBounds() Rect {
	return e.minimap().bounds
}

// ViewportIndicator returns the screen rectangle of the minimap's draggable
// view box.
func (e *Editor) ViewportIndicator() Rect {
	return e.minimap().viewportBox(e.view)
}

func (e *Editor) minimap() minimapLayout {
	return layoutMinimap(&e.cfg, e.view.Viewport())
}
