package viewport

import "github.com/gogpu/gg"

// Rect is an axis-aligned rectangle in virtual space.
// Min is the bottom-left corner and Max the top-right corner when the
// virtual Y axis points up; with WithYAxisDown the roles of Min.Y and
// Max.Y swap, but Min <= Max always holds component-wise for rectangles
// built with R.
type Rect struct {
	Min, Max gg.Point
}

// R creates a Rect from two opposite corners, normalizing the
// coordinates so that Min <= Max holds component-wise.
func R(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{Min: gg.Pt(x0, y0), Max: gg.Pt(x1, y1)}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() gg.Point {
	return gg.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Empty returns true if the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Intersects reports whether r and o overlap in a region of non-zero
// area. Rectangles that merely share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the Min edges are inside; points on the Max edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
