// Package geom provides the generic primitives that the shape package
// is built on: points, line segments and axis-aligned rectangles.
//
// It is patterned after image.Point and image.Rectangle, but is
// generic over the coordinate type and treats rectangles as closed,
// meaning that Max is inside of the rectangle.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Unsigned is a constraint for unsigned integer types. It is used for
// lengths, such as radii, that can never be negative.
type Unsigned interface {
	constraints.Unsigned
}
