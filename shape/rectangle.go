package shape

import (
	"slices"

	"deedles.dev/xshape/geom"
)

// Rectangle is an axis-aligned rectangle. Both corners are inside of
// it.
type Rectangle struct {
	geom.Rect[uint8]
}

// NewRectangle returns a rectangle with corners a and b. The corners
// are normalized so that Min <= Max componentwise.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{geom.NewRect(a, b)}
}

// RectangleUnchecked returns a rectangle from min to max without
// normalizing the corners. Every method of Rectangle assumes that
// min <= max componentwise.
func RectangleUnchecked(min, max Point) Rectangle {
	return Rectangle{geom.RectUnchecked(min, max)}
}

func (Rectangle) isShape() {}

func (Rectangle) Kind() Kind { return KindRectangle }

// Width returns the width of r.
func (r Rectangle) Width() uint8 { return r.Dx() }

// Height returns the height of r.
func (r Rectangle) Height() uint8 { return r.Dy() }

// BBox returns r.
func (r Rectangle) BBox() Rectangle {
	return r
}

// Centroid returns the midpoint of r, rounded down.
func (r Rectangle) Centroid() Point {
	return r.Center()
}

// PointsInside returns every grid point of r.
func (r Rectangle) PointsInside() []Point {
	return slices.Collect(geom.GridPoints(r.Rect))
}
