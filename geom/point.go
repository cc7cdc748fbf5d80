package geom

import (
	"cmp"
	"fmt"
	"math"
)

// Point is a 2D coordinate. Points are ordered lexicographically, first
// by X and then by Y.
type Point[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns p+q. Unsigned coordinate types wrap around on overflow.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Pt(p.X+q.X, p.Y+q.Y)
}

// Sub returns p-q. Unsigned coordinate types wrap around on underflow.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Pt(p.X-q.X, p.Y-q.Y)
}

// Cmp compares p and q lexicographically, returning -1, 0, or 1.
func (p Point[T]) Cmp(q Point[T]) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// Less reports whether p sorts before q.
func (p Point[T]) Less(q Point[T]) bool {
	return p.Cmp(q) < 0
}

// Min returns the componentwise minimum of p and q.
func (p Point[T]) Min(q Point[T]) Point[T] {
	return Pt(min(p.X, q.X), min(p.Y, q.Y))
}

// Max returns the componentwise maximum of p and q.
func (p Point[T]) Max(q Point[T]) Point[T] {
	return Pt(max(p.X, q.X), max(p.Y, q.Y))
}

// Float returns p with its coordinates converted to float64.
func (p Point[T]) Float() Point[float64] {
	return Map(p, func(v T) float64 { return float64(v) })
}

// Map applies f to each coordinate of p.
func Map[T, U Scalar](p Point[T], f func(T) U) Point[U] {
	return Pt(f(p.X), f(p.Y))
}

// DistanceSquared returns the squared Euclidean distance between a and
// b. The per-axis deltas are computed as max-min in T, so it is safe to
// use with unsigned coordinate types.
func DistanceSquared[T Scalar](a, b Point[T]) float64 {
	x := float64(max(a.X, b.X) - min(a.X, b.X))
	y := float64(max(a.Y, b.Y) - min(a.Y, b.Y))
	return x*x + y*y
}

// Distance returns the Euclidean distance between a and b. It is
// symmetric.
func Distance[T Scalar](a, b Point[T]) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}
