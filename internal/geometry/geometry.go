// Package geometry provides rectangle math over the grid-unit coordinate
// space used by floor plans.
package geometry

// Rect is an axis-aligned rectangle covering [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) Right() int {
	return r.X + r.Width
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Overlaps reports whether a and b share any interior area. Touching edges
// do not count as overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// InBounds reports whether r lies fully inside [0, width] x [0, height].
func InBounds(r Rect, width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= width && r.Bottom() <= height
}

// InInsetBounds reports whether r lies fully inside the bounds shrunk by
// margin on every edge.
func InInsetBounds(r Rect, width, height, margin int) bool {
	return r.X >= margin && r.Y >= margin &&
		r.Right() <= width-margin && r.Bottom() <= height-margin
}

// Clamp returns r shifted so it cannot start below 0 or extend past the
// given bounds. Size is preserved.
func Clamp(r Rect, width, height int) Rect {
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.Right() > width {
		r.X = width - r.Width
	}
	if r.Bottom() > height {
		r.Y = height - r.Height
	}
	return r
}
