package shape

import (
	"math"

	"deedles.dev/xshape/geom"
)

// Triangle is a filled triangle. The order of the vertices has no
// effect on any of its methods.
type Triangle [3]Point

// NewTriangle returns the triangle with vertices a, b and c.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{a, b, c}
}

func (Triangle) isShape() {}

func (Triangle) Kind() Kind { return KindTriangle }

// Edges returns the three sides of t.
func (t Triangle) Edges() [3]Line {
	return [...]Line{
		geom.NewLine(t[0], t[1]),
		geom.NewLine(t[1], t[2]),
		geom.NewLine(t[2], t[0]),
	}
}

// BBox returns the bounding box of t. The high corner is one past the
// furthest vertex on each axis, saturating at the edge of the grid.
func (t Triangle) BBox() Rectangle {
	lo := t[0].Min(t[1]).Min(t[2])
	hi := t[0].Max(t[1]).Max(t[2])
	return NewRectangle(lo, Pt(addSat(hi.X, 1), addSat(hi.Y, 1)))
}

func addSat(a, b uint8) uint8 {
	if a > math.MaxUint8-b {
		return math.MaxUint8
	}
	return a + b
}

// Centroid returns the mean of the vertices of t, rounded to the
// nearest grid point.
func (t Triangle) Centroid() Point {
	var x, y int
	for _, v := range t {
		x += int(v.X)
		y += int(v.Y)
	}
	return Pt(
		uint8(math.Round(float64(x)/3)),
		uint8(math.Round(float64(y)/3)),
	)
}

// PointsInside returns every grid point within t.
func (t Triangle) PointsInside() []Point {
	return rasterize(t)
}

// Within reports whether p is inside of t or on one of its edges.
//
// p is inside exactly when the three triangles formed by p and each
// edge of t have a total area equal to t's. All of the areas are
// doubled integers, so they are exact in float64 and are compared
// without a tolerance.
func (t Triangle) Within(p Point) bool {
	if !t.BBox().Within(p) {
		return false
	}

	a, b, c := t[0].Float(), t[1].Float(), t[2].Float()
	pf := p.Float()

	abc := area2(a, b, c)
	pbc := area2(pf, b, c)
	apc := area2(a, pf, c)
	abp := area2(a, b, pf)

	return abc == pbc+apc+abp
}

// area2 returns twice the unsigned area of the triangle abc.
func area2(a, b, c geom.Point[float64]) float64 {
	x1, y1 := a.X-c.X, a.Y-c.Y
	x2, y2 := b.X-c.X, b.Y-c.Y
	return math.Abs(x1*y2 - x2*y1)
}

// Distance returns the distance from p to the nearest edge of t, or 0
// if p is within t.
func (t Triangle) Distance(p Point) float64 {
	if t.Within(p) {
		return 0
	}

	d := math.MaxFloat64
	for _, edge := range t.Edges() {
		d = min(d, edge.Distance(p))
	}
	return d
}
