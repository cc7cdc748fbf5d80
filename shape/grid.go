package shape

import (
	"math"
	"slices"

	"deedles.dev/xiter"
	"deedles.dev/xshape/geom"
)

// saturate truncates v towards zero and clamps it onto the grid. NaN
// maps to 0.
func saturate(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}

func clamp(v int16) uint8 {
	return uint8(min(max(v, 0), math.MaxUint8))
}

type rasterizable interface {
	BoundingBox
	Within
}

// rasterize returns every grid point in the bounding box of s that is
// within s.
func rasterize(s rasterizable) []Point {
	return slices.Collect(xiter.Filter(geom.GridPoints(s.BBox().Rect), s.Within))
}
