package shape_test

import (
	"testing"

	"deedles.dev/xshape/shape"
	"github.com/stretchr/testify/require"
)

func TestCircleBBox(t *testing.T) {
	tests := []struct {
		name     string
		circle   shape.Circle
		min, max shape.Point
	}{
		{name: "normal", circle: shape.NewCircle(shape.Pt(12, 12), 10), min: shape.Pt(2, 2), max: shape.Pt(22, 22)},
		{name: "edge/top+start", circle: shape.NewCircle(shape.Pt(0, 0), 10), min: shape.Pt(0, 0), max: shape.Pt(10, 10)},
		{name: "edge/top+end", circle: shape.NewCircle(shape.Pt(255, 0), 10), min: shape.Pt(245, 0), max: shape.Pt(255, 10)},
		{name: "edge/bottom+start", circle: shape.NewCircle(shape.Pt(0, 255), 10), min: shape.Pt(0, 245), max: shape.Pt(10, 255)},
		{name: "edge/bottom+end", circle: shape.NewCircle(shape.Pt(255, 255), 10), min: shape.Pt(245, 245), max: shape.Pt(255, 255)},
		{name: "huge", circle: shape.NewCircle(shape.Pt(128, 128), 255), min: shape.Pt(0, 0), max: shape.Pt(255, 255)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bbox := test.circle.BBox()
			require.Equal(t, test.min, bbox.Min)
			require.Equal(t, test.max, bbox.Max)
		})
	}
}

func TestCircleWithin(t *testing.T) {
	circle := shape.NewCircle(shape.Pt(0, 0), 10)

	tests := []struct {
		name string
		p    shape.Point
		want bool
	}{
		{name: "center", p: shape.Pt(0, 0), want: true},
		{name: "inside right", p: shape.Pt(1, 0), want: true},
		{name: "inside top", p: shape.Pt(0, 1), want: true},
		{name: "inside edge right", p: shape.Pt(10, 0), want: true},
		{name: "inside edge top", p: shape.Pt(0, 10), want: true},
		{name: "outside edge top-right", p: shape.Pt(10, 10), want: false},
		{name: "outside right", p: shape.Pt(11, 0), want: false},
		{name: "outside top", p: shape.Pt(0, 11), want: false},
		{name: "outside top-right", p: shape.Pt(11, 11), want: false},
		{name: "outside max", p: shape.Pt(255, 255), want: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, circle.Within(test.p))
		})
	}
}

func TestCircleWithinZeroRadius(t *testing.T) {
	circle := shape.NewCircle(shape.Pt(7, 9), 0)
	require.True(t, circle.Within(shape.Pt(7, 9)))
	require.False(t, circle.Within(shape.Pt(7, 10)))
	require.Equal(t, []shape.Point{shape.Pt(7, 9)}, circle.PointsInside())
}

func TestCirclePointsInside(t *testing.T) {
	circle := shape.NewCircle(shape.Pt(5, 5), 2)
	require.ElementsMatch(t, []shape.Point{
		shape.Pt(3, 5),
		shape.Pt(4, 4), shape.Pt(4, 5), shape.Pt(4, 6),
		shape.Pt(5, 3), shape.Pt(5, 4), shape.Pt(5, 5), shape.Pt(5, 6), shape.Pt(5, 7),
		shape.Pt(6, 4), shape.Pt(6, 5), shape.Pt(6, 6),
		shape.Pt(7, 5),
	}, circle.PointsInside())
}

func TestCircleCentroid(t *testing.T) {
	require.Equal(t, shape.Pt(5, 6), shape.NewCircle(shape.Pt(5, 6), 3).Centroid())
}

func TestCircleDistance(t *testing.T) {
	circle := shape.NewCircle(shape.Pt(5, 5), 10)
	require.Equal(t, 5.0, circle.Distance(shape.Pt(20, 5)))
	require.Equal(t, 0.0, circle.Distance(shape.Pt(5, 5)))
	require.Equal(t, 0.0, circle.Distance(shape.Pt(15, 5)))
	require.Equal(t, 0.0, circle.Distance(shape.Pt(11, 13)))
	require.InDelta(t, 5.5242, circle.Distance(shape.Pt(20, 1)), 1e-4)
}

func TestCircleDistanceToCircle(t *testing.T) {
	tests := []struct {
		a, b shape.Circle
		want float64
	}{
		{a: shape.NewCircle(shape.Pt(60, 60), 10), b: shape.NewCircle(shape.Pt(60, 120), 10), want: 40},
		{a: shape.NewCircle(shape.Pt(60, 60), 10), b: shape.NewCircle(shape.Pt(60, 120), 5), want: 45},
		{a: shape.NewCircle(shape.Pt(60, 60), 10), b: shape.NewCircle(shape.Pt(120, 60), 10), want: 40},
		{a: shape.NewCircle(shape.Pt(60, 60), 10), b: shape.NewCircle(shape.Pt(120, 60), 5), want: 45},
		{a: shape.NewCircle(shape.Pt(60, 60), 10), b: shape.NewCircle(shape.Pt(120, 120), 10), want: 64.8528137423857},
		{a: shape.NewCircle(shape.Pt(60, 60), 10), b: shape.NewCircle(shape.Pt(120, 120), 5), want: 69.8528137423857},
		{a: shape.NewCircle(shape.Pt(60, 60), 10), b: shape.NewCircle(shape.Pt(70, 60), 10), want: 0},
	}
	for _, test := range tests {
		require.InDelta(t, test.want, test.a.DistanceToCircle(test.b), 1e-9)
		require.InDelta(t, test.want, test.b.DistanceToCircle(test.a), 1e-9)
	}
}
