package shape

import (
	"context"
	"log/slog"
	"math"

	"deedles.dev/xshape/geom"
)

// DefaultSolverIterations is the iteration cap that Ellipse.Distance
// passes to PointIntersection.
const DefaultSolverIterations = 10

// maxSolverStep is the largest angle, in radians, that a single Newton
// step in PointIntersection may move.
const maxSolverStep = math.Pi / 4

// Ellipse is a filled, axis-aligned ellipse. Radius holds the
// horizontal and vertical semi-axes, in that order. Either may be zero,
// in which case the ellipse contains only its center.
type Ellipse struct {
	Center Point    `json:"center"`
	Radius [2]uint8 `json:"radius"`
}

// NewEllipse returns an ellipse around center with semi-axes rx and
// ry.
func NewEllipse(center Point, rx, ry uint8) Ellipse {
	return Ellipse{Center: center, Radius: [2]uint8{rx, ry}}
}

func (Ellipse) isShape() {}

func (Ellipse) Kind() Kind { return KindEllipse }

// Width returns the horizontal semi-axis of e.
func (e Ellipse) Width() uint8 { return e.Radius[0] }

// Height returns the vertical semi-axis of e.
func (e Ellipse) Height() uint8 { return e.Radius[1] }

// BBox returns the bounding box of e. It extends one unit past the
// ellipse on the high side of each axis and is clipped to the grid.
func (e Ellipse) BBox() Rectangle {
	rx, ry := float64(e.Width()), float64(e.Height())
	x := float64(e.Center.X) - rx
	y := float64(e.Center.Y) - ry
	w := rx*2 + 1
	h := ry*2 + 1

	return NewRectangle(
		Pt(saturate(x), saturate(y)),
		Pt(saturate(x+w), saturate(y+h)),
	)
}

// Centroid returns the center of e.
func (e Ellipse) Centroid() Point {
	return e.Center
}

// PointsInside returns every grid point within e.
func (e Ellipse) PointsInside() []Point {
	return rasterize(e)
}

// Within reports whether p is inside of e or on its boundary.
func (e Ellipse) Within(p Point) bool {
	if e.Width() == 0 || e.Height() == 0 {
		return p == e.Center
	}

	if !e.BBox().Within(p) {
		return false
	}

	d := p.Float().Sub(e.Center.Float())
	rx, ry := float64(e.Width()), float64(e.Height())

	return (d.X*d.X)/(rx*rx)+(d.Y*d.Y)/(ry*ry) <= 1
}

// Distance returns the distance from p to the boundary of e, or 0 if p
// is within e.
func (e Ellipse) Distance(p Point) float64 {
	if e.Within(p) {
		return 0
	}

	// On either axis the nearest boundary point is the vertex on that
	// axis. A zero semi-axis can leave p closer to the center than the
	// vertex, so clamp at 0.
	switch {
	case p.X == e.Center.X:
		return max(geom.Distance(e.Center, p)-float64(e.Height()), 0)
	case p.Y == e.Center.Y:
		return max(geom.Distance(e.Center, p)-float64(e.Width()), 0)
	}

	nearest := e.PointIntersection(p, DefaultSolverIterations)
	return geom.Distance(nearest, p.Float())
}

// PointIntersection returns the point on the boundary of e that is
// closest to p. Unlike every other method in the package, the result
// is not snapped to the grid.
//
// The boundary point is parameterized as (a cos φ, b sin φ) around the
// center. Starting from the angle of p after scaling e into a circle,
// φ is refined with Newton's method on
//
//	f(φ) = (a²-b²) cos φ sin φ - x a sin φ + y b cos φ
//
// which is zero where the distance from p to the boundary is
// stationary. Iteration stops after maxIterations steps or once a step
// is smaller than 0.1/max(a, b) radians, which corresponds to roughly
// a tenth of a unit along the boundary.
func (e Ellipse) PointIntersection(p Point, maxIterations int) geom.Point[float64] {
	a, b := float64(e.Width()), float64(e.Height())
	d := p.Float().Sub(e.Center.Float())
	epsilon := 0.1 / max(a, b)

	phi := math.Atan2(a*d.Y, b*d.X)

	for i := range maxIterations {
		sin, cos := math.Sincos(phi)

		f := (a*a-b*b)*cos*sin - d.X*a*sin + d.Y*b*cos
		df := (a*a-b*b)*(cos*cos-sin*sin) - d.X*a*cos - d.Y*b*sin
		if df == 0 {
			logSolver("zero derivative", e, p, i, phi)
			break
		}

		delta := min(max(f/df, -maxSolverStep), maxSolverStep)
		phi -= delta
		if math.Abs(delta) < epsilon {
			break
		}

		if i == maxIterations-1 {
			logSolver("iteration limit reached", e, p, maxIterations, phi)
		}
	}

	sin, cos := math.Sincos(phi)
	return geom.Pt(a*cos+float64(e.Center.X), b*sin+float64(e.Center.Y))
}

func logSolver(msg string, e Ellipse, p Point, iterations int, phi float64) {
	logger := Logger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	logger.Debug(
		"ellipse solver: "+msg,
		slog.String("center", e.Center.String()),
		slog.Int("rx", int(e.Width())),
		slog.Int("ry", int(e.Height())),
		slog.String("point", p.String()),
		slog.Int("iterations", iterations),
		slog.Float64("phi", phi),
	)
}
