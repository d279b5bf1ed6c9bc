package easel

import (
	"image/color"
	"math"
	"time"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// toRGBA returns the premultiplied color.RGBA used by ebiten and gg.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied component-wise by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height may be negative
// while a rectangle is being drawn; committed rectangles are always
// normalized.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Normalized returns the same area with a top-left origin and non-negative
// size.
func (r Rect) Normalized() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// HasArea reports whether both dimensions are strictly positive.
func (r Rect) HasArea() bool {
	return r.Width > 0 && r.Height > 0
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// RectID identifies a committed rectangle for its whole lifetime.
// IDs are assigned in increasing order and never reused. Zero means "none".
type RectID uint64

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ButtonMask is the set of buttons held at the time of an event.
type ButtonMask uint8

const (
	ButtonPrimary   ButtonMask = 1 << iota // left button held
	ButtonSecondary                        // right button held
	ButtonAuxiliary                        // middle button held
)

// Has reports whether b is held.
func (m ButtonMask) Has(b ButtonMask) bool { return m&b != 0 }

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Config holds the fixed dimensions and limits of an editor. Start from
// DefaultConfig.
type Config struct {
	// VirtualSize is the extent of canvas space in canvas units.
	VirtualSize Vec2
	// MinimapSize is the on-screen size of the minimap in pixels.
	MinimapSize Vec2
	// MinimapMargin is the gap between the minimap and the bottom-right
	// corner of the viewport.
	MinimapMargin float64
	// MinZoomSteps and MaxZoomSteps bound the zoom level, expressed in
	// ZoomStep units (3 and 30 give [0.3, 3.0]).
	MinZoomSteps int
	MaxZoomSteps int
	// ZoomStep is the zoom change per wheel notch or toolbar press.
	ZoomStep float64
	// MoveThrottle is the minimum time between two processed pointer moves.
	MoveThrottle time.Duration
	// ExportScale is the pixels-per-canvas-unit used by Export.
	ExportScale float64
	// ExportDir is where Export writes PNG files.
	ExportDir string
}

// DefaultConfig returns the standard 10000x10000 canvas with a 200x200
// minimap, zoom in [0.3, 3.0] and a 16ms move throttle.
func DefaultConfig() Config {
	return Config{
		VirtualSize:   Vec2{10000, 10000},
		MinimapSize:   Vec2{200, 200},
		MinimapMargin: 20,
		MinZoomSteps:  3,
		MaxZoomSteps:  30,
		ZoomStep:      0.1,
		MoveThrottle:  16 * time.Millisecond,
		ExportScale:   0.1,
		ExportDir:     "exports",
	}
}

// Palette used by the frame projection and the exporter.
var (
	ColorRect         = Color{0, 150.0 / 255, 1, 0.5}
	ColorRectSelected = Color{1, 0, 0, 0.5}
	ColorRectBorder   = Color{0, 0x77 / 255.0, 0xcc / 255.0, 1}
	ColorMinimapRect  = Color{0, 150.0 / 255, 1, 0.4}
	ColorMinimapBG    = Color{0, 0, 0, 0.2}
	ColorMinimapEdge  = Color{0, 0, 0, 1}
	ColorViewportBox  = Color{1, 0, 0, 1}
	ColorTooltipBG    = Color{0, 0, 0, 0.7}
	ColorLabelBG      = Color{0.2, 0.2, 0.2, 0.85}
	ColorLabelBorder  = Color{0xcc / 255.0, 0xcc / 255.0, 0xcc / 255.0, 1}
	ColorButton       = Color{0.3, 0.3, 0.3, 1}
	ColorButtonBorder = Color{0.46, 0.46, 0.46, 1}
	ColorBackground   = Color{1, 1, 1, 1}
)
