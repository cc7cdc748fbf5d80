package shape

import (
	"maps"
	"math"
	"slices"
)

// Collection is a group of shapes treated as their union. The order of
// Shapes is preserved but has no effect on any of the methods.
type Collection struct {
	Shapes []Shape
}

// NewCollection returns a collection of the given shapes.
func NewCollection(shapes ...Shape) Collection {
	return Collection{Shapes: shapes}
}

func (Collection) isShape() {}

func (Collection) Kind() Kind { return KindCollection }

// Equal reports whether c and other contain equal shapes in the same
// order.
func (c Collection) Equal(other Collection) bool {
	return slices.EqualFunc(c.Shapes, other.Shapes, Equal)
}

// BBox returns the union of the bounding boxes of the shapes in c. The
// bounding box of an empty collection is the entire grid.
func (c Collection) BBox() Rectangle {
	lo := Pt(math.MaxUint8, math.MaxUint8)
	hi := Pt(0, 0)
	for _, s := range c.Shapes {
		bbox := s.BBox()
		lo = lo.Min(bbox.Min)
		hi = hi.Max(bbox.Max)
	}
	return NewRectangle(lo, hi)
}

// Centroid returns the mean of the centroids of the shapes in c. The
// mean is truncated, not rounded, onto the grid.
//
// Centroid panics if c is empty.
func (c Collection) Centroid() Point {
	if len(c.Shapes) == 0 {
		panic("centroid of empty collection")
	}

	var x, y float64
	for _, s := range c.Shapes {
		p := s.Centroid()
		x += float64(p.X)
		y += float64(p.Y)
	}

	n := float64(len(c.Shapes))
	return Pt(saturate(x/n), saturate(y/n))
}

// PointsInside returns the union of the points inside of each shape in
// c, without duplicates, sorted lexicographically.
func (c Collection) PointsInside() []Point {
	set := make(map[Point]struct{})
	for _, s := range c.Shapes {
		for _, p := range s.PointsInside() {
			set[p] = struct{}{}
		}
	}
	return slices.SortedFunc(maps.Keys(set), Point.Cmp)
}

// Within reports whether p is within any shape in c.
func (c Collection) Within(p Point) bool {
	for _, s := range c.Shapes {
		if s.Within(p) {
			return true
		}
	}
	return false
}

// Distance returns the smallest distance from p to any shape in c. The
// distance to an empty collection is math.MaxFloat64.
func (c Collection) Distance(p Point) float64 {
	d := math.MaxFloat64
	for _, s := range c.Shapes {
		d = min(d, s.Distance(p))
	}
	return d
}
