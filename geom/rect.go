package geom

import (
	"fmt"
	"iter"
	"math"
)

// Rect is an axis-aligned rectangle. Unlike image.Rectangle, both Min
// and Max are inside of the rectangle. A well-formed Rect has
// Min.X <= Max.X and Min.Y <= Max.Y; the functions in this package
// assume that it is.
type Rect[T Scalar] struct {
	Min Point[T] `json:"min"`
	Max Point[T] `json:"max"`
}

// NewRect returns the rectangle with corners a and b, normalized so
// that Min is the componentwise minimum of the two and Max the
// maximum.
func NewRect[T Scalar](a, b Point[T]) Rect[T] {
	return Rect[T]{Min: a.Min(b), Max: a.Max(b)}
}

// Rt is shorthand for NewRect(Pt(x0, y0), Pt(x1, y1)).
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return NewRect(Pt(x0, y0), Pt(x1, y1))
}

// RectUnchecked returns a rectangle with the given corners without
// normalizing them.
func RectUnchecked[T Scalar](min, max Point[T]) Rect[T] {
	return Rect[T]{Min: min, Max: max}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("[%v %v]", r.Min, r.Max)
}

// Dx returns the width of r.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of r. The sum of the corners is computed
// in float64 so that it can't overflow T.
func (r Rect[T]) Center() Point[T] {
	mid := func(a, b T) T {
		return T((float64(a) + float64(b)) / 2)
	}
	return Pt(mid(r.Min.X, r.Max.X), mid(r.Min.Y, r.Max.Y))
}

// Within reports whether p is inside of r or on its boundary.
func (r Rect[T]) Within(p Point[T]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Union returns the smallest rectangle that contains both r and other.
func (r Rect[T]) Union(other Rect[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Min(other.Min), Max: r.Max.Max(other.Max)}
}

// Edges returns the four sides of r, in the order top, right, bottom,
// left.
func (r Rect[T]) Edges() [4]Line[T] {
	tr := Pt(r.Max.X, r.Min.Y)
	bl := Pt(r.Min.X, r.Max.Y)
	return [...]Line[T]{
		NewLine(r.Min, tr),
		NewLine(tr, r.Max),
		NewLine(r.Max, bl),
		NewLine(bl, r.Min),
	}
}

// Distance returns 0 if p is within r and the distance from p to the
// nearest edge of r otherwise.
func (r Rect[T]) Distance(p Point[T]) float64 {
	if r.Within(p) {
		return 0
	}

	d := math.MaxFloat64
	for _, edge := range r.Edges() {
		d = min(d, edge.Distance(p))
	}
	return d
}

// GridPoints returns an iterator over every integer point in r, row by
// row. Nothing is yielded if r is not well-formed.
func GridPoints[T Integer](r Rect[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
			return
		}

		// Stop on equality rather than on passing Max so that a
		// rectangle reaching the top of T's range doesn't wrap around.
		for y := r.Min.Y; ; y++ {
			for x := r.Min.X; ; x++ {
				if !yield(Pt(x, y)) {
					return
				}
				if x == r.Max.X {
					break
				}
			}
			if y == r.Max.Y {
				return
			}
		}
	}
}
