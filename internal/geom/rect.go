package geom

import "fmt"

// Rect represents a position and size in layout coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Empty reports whether the rect covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ContainsPoint reports whether (x, y) falls inside r.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) ContainsPoint(x, y float64) bool {
	if r.Empty() {
		return false
	}
	return x >= float64(r.X) && x < float64(r.X+r.Width) &&
		y >= float64(r.Y) && y < float64(r.Y+r.Height)
}

// Intersects reports whether a and b overlap.
func (r Rect) Intersects(b Rect) bool {
	return r.X < b.X+b.Width &&
		r.X+r.Width > b.X &&
		r.Y < b.Y+b.Height &&
		r.Y+r.Height > b.Y
}

// Intersect returns the overlapping area of r and b. The result is the zero
// Rect when they do not overlap.
func (r Rect) Intersect(b Rect) Rect {
	minX := max(r.X, b.X)
	minY := max(r.Y, b.Y)
	maxX := min(r.X+r.Width, b.X+b.Width)
	maxY := min(r.Y+r.Height, b.Y+b.Height)
	if maxX <= minX || maxY <= minY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Union returns the smallest rect containing every rect in rects.
func Union(rects []Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}

	minX := rects[0].X
	minY := rects[0].Y
	maxX := rects[0].X + rects[0].Width
	maxY := rects[0].Y + rects[0].Height

	for _, rect := range rects[1:] {
		minX = min(minX, rect.X)
		minY = min(minY, rect.Y)
		maxX = max(maxX, rect.X+rect.Width)
		maxY = max(maxY, rect.Y+rect.Height)
	}

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}, true
}
