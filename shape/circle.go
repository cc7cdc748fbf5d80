package shape

import "deedles.dev/xshape/geom"

// Circle is a filled circle.
type Circle struct {
	Center Point `json:"center"`
	Radius uint8 `json:"radius"`
}

// NewCircle returns a circle of the given radius around center.
func NewCircle(center Point, radius uint8) Circle {
	return Circle{Center: center, Radius: radius}
}

func (Circle) isShape() {}

func (Circle) Kind() Kind { return KindCircle }

// BBox returns the bounding box of c. A circle that extends off of the
// grid has its bounding box clipped to the grid.
func (c Circle) BBox() Rectangle {
	r := int16(c.Radius)
	x, y := int16(c.Center.X), int16(c.Center.Y)

	return NewRectangle(
		Pt(clamp(x-r), clamp(y-r)),
		Pt(clamp(x+r), clamp(y+r)),
	)
}

// Centroid returns the center of c.
func (c Circle) Centroid() Point {
	return c.Center
}

// PointsInside returns every grid point within c.
func (c Circle) PointsInside() []Point {
	return rasterize(c)
}

// Within reports whether p is inside of c or on its boundary. A circle
// of radius 0 contains only its center.
func (c Circle) Within(p Point) bool {
	if c.Radius == 0 {
		return p == c.Center
	}

	r := float64(c.Radius)
	return geom.DistanceSquared(c.Center, p) <= r*r
}

// Distance returns the distance from p to the edge of c, or 0 if p is
// within c.
func (c Circle) Distance(p Point) float64 {
	if c.Within(p) {
		return 0
	}

	return geom.Distance(c.Center, p) - float64(c.Radius)
}

// DistanceToCircle returns the distance between the edges of c and
// other, or 0 if they touch or overlap.
func (c Circle) DistanceToCircle(other Circle) float64 {
	centers := geom.Distance(c.Center, other.Center)
	radii := float64(c.Radius) + float64(other.Radius)
	if centers > radii {
		return centers - radii
	}
	return 0
}
