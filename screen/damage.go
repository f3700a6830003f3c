package screen

import (
	"image"
	"image/color"
)

// Damager receives the corners of every region a draw call modifies.
type Damager interface {
	Damage(min, max image.Point)
}

// DamageTracker accumulates the bounding box of all reported damage until
// it is reset.
type DamageTracker struct {
	bounds image.Rectangle
	dirty  bool
}

func (t *DamageTracker) Damage(min, max image.Point) {
	r := image.Rectangle{Min: min, Max: max}.Canon()
	if !t.dirty {
		t.bounds, t.dirty = r, true
		return
	}
	if r.Min.X < t.bounds.Min.X {
		t.bounds.Min.X = r.Min.X
	}
	if r.Min.Y < t.bounds.Min.Y {
		t.bounds.Min.Y = r.Min.Y
	}
	if r.Max.X > t.bounds.Max.X {
		t.bounds.Max.X = r.Max.X
	}
	if r.Max.Y > t.bounds.Max.Y {
		t.bounds.Max.Y = r.Max.Y
	}
}

// Bounds reports the accumulated damage and whether anything was reported
// since the last Reset.
func (t *DamageTracker) Bounds() (image.Rectangle, bool) {
	return t.bounds, t.dirty
}

func (t *DamageTracker) Reset() {
	t.bounds, t.dirty = image.Rectangle{}, false
}

// Frame is a video surface: a Buffer plus the damage reported against it.
type Frame struct {
	buf *Buffer
	DamageTracker
}

func NewFrame(width, height int, palette color.Palette) *Frame {
	return &Frame{buf: NewBuffer(width, height, palette)}
}

func (f *Frame) Surface() *Buffer {
	return f.buf
}

// Resize replaces the surface, keeping its palette, and forgets any damage.
func (f *Frame) Resize(width, height int) {
	f.buf = NewBuffer(width, height, f.buf.Palette)
	f.Reset()
}

// Dirty returns the accumulated damage limited to the surface bounds.
func (f *Frame) Dirty() image.Rectangle {
	r, ok := f.Bounds()
	if !ok {
		return image.Rectangle{}
	}
	return r.Intersect(f.buf.Rect)
}
