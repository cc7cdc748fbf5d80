package geom

import "fmt"

// Line is a line segment. Start never sorts after End, so two lines
// with the same endpoints compare equal regardless of the order in
// which the endpoints were given.
type Line[T Scalar] struct {
	Start Point[T] `json:"start"`
	End   Point[T] `json:"end"`
}

// NewLine returns the segment between a and b with its endpoints in
// canonical order.
func NewLine[T Scalar](a, b Point[T]) Line[T] {
	if a.Less(b) {
		return Line[T]{Start: a, End: b}
	}
	return Line[T]{Start: b, End: a}
}

// LineUnchecked returns a segment from start to end without
// normalizing it. The caller must ensure that start does not sort after
// end.
func LineUnchecked[T Scalar](start, end Point[T]) Line[T] {
	return Line[T]{Start: start, End: end}
}

func (l Line[T]) String() string {
	return fmt.Sprintf("%v-%v", l.Start, l.End)
}

// Distance returns the shortest distance from p to any point on the
// segment.
func (l Line[T]) Distance(p Point[T]) float64 {
	pf, sf, ef := p.Float(), l.Start.Float(), l.End.Float()

	a := pf.X - sf.X
	b := pf.Y - sf.Y
	c := ef.X - sf.X
	d := ef.Y - sf.Y

	dot := a*c + b*d
	lenSq := c*c + d*d

	// A zero-length segment collapses to its start point.
	param := -1.0
	if lenSq != 0 {
		param = dot / lenSq
	}

	var nearest Point[float64]
	switch {
	case param < 0:
		nearest = sf
	case param > 1:
		nearest = ef
	default:
		nearest = Pt(sf.X+param*c, sf.Y+param*d)
	}

	return Distance(pf, nearest)
}
