// Package shape implements a small set of closed 2D shapes on an 8-bit
// integer grid, along with a uniform set of capabilities shared by all
// of them: bounding boxes, centroids, rasterization, point membership
// and point distance.
//
// Every coordinate is a uint8, so the grid spans [0, 255] on both axes.
// Intermediate results are computed in wider types and saturated back
// onto the grid wherever the result has to be a grid coordinate.
//
// All shapes are immutable values. They are safe to share between
// goroutines without synchronization.
package shape

import (
	"fmt"

	"deedles.dev/xshape/geom"
)

// Point is a coordinate on the grid.
type Point = geom.Point[uint8]

// Line is a line segment between two grid points.
type Line = geom.Line[uint8]

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y uint8) Point {
	return geom.Pt(x, y)
}

// BoundingBox is implemented by shapes that can report the smallest
// rectangle containing every point that is within them.
type BoundingBox interface {
	BBox() Rectangle
}

// Centroid is implemented by shapes that have a representative center
// point.
type Centroid interface {
	Centroid() Point
}

// PointsInside is implemented by shapes that can enumerate the grid
// points that are within them.
type PointsInside interface {
	PointsInside() []Point
}

// Within is implemented by shapes that can test whether a point is
// inside of them. Points on the boundary are inside.
type Within interface {
	Within(p Point) bool
}

// Distance is implemented by shapes that can measure the distance
// from a point to their boundary. Points that are within the shape are
// at distance 0.
type Distance interface {
	Distance(p Point) float64
}

// Shape is one of Rectangle, Circle, Ellipse, Triangle or Collection.
// The set of shapes is closed: no type outside of this package can
// implement Shape.
type Shape interface {
	BoundingBox
	Centroid
	PointsInside
	Within
	Distance

	// Kind returns the variant of the shape.
	Kind() Kind

	isShape()
}

// Kind identifies the concrete type of a Shape.
type Kind uint8

const (
	KindRectangle Kind = 1 + iota
	KindCircle
	KindEllipse
	KindTriangle
	KindCollection
)

var kindNames = map[Kind]string{
	KindRectangle:  "rectangle",
	KindCircle:     "circle",
	KindEllipse:    "ellipse",
	KindTriangle:   "triangle",
	KindCollection: "collection",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Equal reports whether a and b are the same shape. Unlike ==, it
// doesn't panic if either contains a Collection.
func Equal(a, b Shape) bool {
	switch a := a.(type) {
	case Rectangle:
		b, ok := b.(Rectangle)
		return ok && a == b
	case Circle:
		b, ok := b.(Circle)
		return ok && a == b
	case Ellipse:
		b, ok := b.(Ellipse)
		return ok && a == b
	case Triangle:
		b, ok := b.(Triangle)
		return ok && a == b
	case Collection:
		b, ok := b.(Collection)
		return ok && a.Equal(b)
	case nil:
		return b == nil
	default:
		panic(fmt.Errorf("unexpected shape type %T", a))
	}
}
