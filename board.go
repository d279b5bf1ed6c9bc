package easel

// Shape is a committed rectangle and its stable identity.
type Shape struct {
	ID   RectID
	Rect Rect
}

// Board is the ordered rectangle collection. Insertion order is z-order:
// later shapes draw on top and are hit-tested first.
type Board struct {
	shapes []Shape
	nextID RectID
}

// Len returns the number of shapes.
func (b *Board) Len() int { return len(b.shapes) }

// Shapes returns the shapes in z-order. The returned slice MUST NOT be mutated.
func (b *Board) Shapes() []Shape { return b.shapes }

// Add normalizes r, appends it on top and returns its new ID.
func (b *Board) Add(r Rect) RectID {
	b.nextID++
	b.shapes = append(b.shapes, Shape{ID: b.nextID, Rect: r.Normalized()})
	return b.nextID
}

func (b *Board) index(id RectID) int {
	if id == 0 {
		return -1
	}
	for i := range b.shapes {
		if b.shapes[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the rectangle for id.
func (b *Board) Get(id RectID) (Rect, bool) {
	i := b.index(id)
	if i < 0 {
		return Rect{}, false
	}
	return b.shapes[i].Rect, true
}

// MoveTo sets the origin of id, leaving its size untouched.
func (b *Board) MoveTo(id RectID, origin Vec2) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.shapes[i].Rect.X = origin.X
	b.shapes[i].Rect.Y = origin.Y
	return true
}

// Remove deletes id. The relative order of the remaining shapes is kept.
func (b *Board) Remove(id RectID) (Rect, bool) {
	i := b.index(id)
	if i < 0 {
		return Rect{}, false
	}
	r := b.shapes[i].Rect
	copy(b.shapes[i:], b.shapes[i+1:])
	b.shapes[len(b.shapes)-1] = Shape{}
	b.shapes = b.shapes[:len(b.shapes)-1]
	return r, true
}

// HitTest returns the topmost shape containing canvas point p.
func (b *Board) HitTest(p Vec2) (Shape, bool) {
	// Iterate backward: topmost shape first.
	for i := len(b.shapes) - 1; i >= 0; i-- {
		if b.shapes[i].Rect.Contains(p.X, p.Y) {
			return b.shapes[i], true
		}
	}
	return Shape{}, false
}
