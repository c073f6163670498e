package game

// Rect is an axis-aligned rectangle in buffer-pixel space, half-open on
// both axes: [X0, X1) x [Y0, Y1).
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// Bounds returns the box covered by s placed at (x, y).
func (s *Sprite) Bounds(x, y int) Rect {
	return Rect{X0: x, Y0: y, X1: x + s.Width, Y1: y + s.Height}
}

// Intersects reports a nonzero-area overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

// Overlaps tests the bounding boxes of two placed sprites. It ignores the
// masks, so sprites whose set cells never touch can still register a hit.
func Overlaps(a *Sprite, xa, ya int, b *Sprite, xb, yb int) bool {
	return a.Bounds(xa, ya).Intersects(b.Bounds(xb, yb))
}
