package geom_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

func TestNewRect(t *testing.T) {
	tests := []struct {
		a, b geom.Point[uint8]
	}{
		{a: geom.Pt[uint8](0, 10), b: geom.Pt[uint8](10, 0)},
		{a: geom.Pt[uint8](10, 0), b: geom.Pt[uint8](0, 10)},
		{a: geom.Pt[uint8](0, 0), b: geom.Pt[uint8](10, 10)},
		{a: geom.Pt[uint8](10, 10), b: geom.Pt[uint8](0, 0)},
	}
	for _, test := range tests {
		r := geom.NewRect(test.a, test.b)
		require.Equal(t, geom.Pt[uint8](0, 0), r.Min)
		require.Equal(t, geom.Pt[uint8](10, 10), r.Max)
	}
}

func TestNewRectNormalizes(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 1000 {
		a := geom.Pt(uint8(r.UintN(256)), uint8(r.UintN(256)))
		b := geom.Pt(uint8(r.UintN(256)), uint8(r.UintN(256)))
		rect := geom.NewRect(a, b)
		require.LessOrEqual(t, rect.Min.X, rect.Max.X)
		require.LessOrEqual(t, rect.Min.Y, rect.Max.Y)
		require.Equal(t, rect, geom.NewRect(b, a))
	}
}

func TestRectSize(t *testing.T) {
	r := geom.Rt[uint8](0, 0, 10, 4)
	require.Equal(t, uint8(10), r.Dx())
	require.Equal(t, uint8(4), r.Dy())
}

func TestRectCenter(t *testing.T) {
	require.Equal(t, geom.Pt[uint8](5, 5), geom.Rt[uint8](0, 0, 10, 10).Center())
	require.Equal(t, geom.Pt[uint8](254, 127), geom.Rt[uint8](253, 0, 255, 255).Center())
	require.Equal(t, geom.Pt[int8](0, -1), geom.Rt[int8](-128, -2, 127, 0).Center())
}

func TestRectWithin(t *testing.T) {
	r := geom.Rt[uint8](0, 0, 10, 10)

	tests := []struct {
		name string
		p    geom.Point[uint8]
		want bool
	}{
		{name: "top-left", p: geom.Pt[uint8](0, 0), want: true},
		{name: "bottom-right", p: geom.Pt[uint8](10, 10), want: true},
		{name: "center", p: geom.Pt[uint8](5, 5), want: true},
		{name: "left", p: geom.Pt[uint8](0, 5), want: true},
		{name: "top", p: geom.Pt[uint8](5, 0), want: true},
		{name: "right", p: geom.Pt[uint8](10, 5), want: true},
		{name: "bottom", p: geom.Pt[uint8](5, 10), want: true},
		{name: "outside right", p: geom.Pt[uint8](11, 5), want: false},
		{name: "outside bottom", p: geom.Pt[uint8](5, 11), want: false},
		{name: "outside corner", p: geom.Pt[uint8](11, 11), want: false},
		{name: "outside max", p: geom.Pt[uint8](255, 255), want: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, r.Within(test.p))
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := geom.Rt(0, 5, 3, 8)
	b := geom.Rt(2, 1, 10, 6)
	require.Equal(t, geom.Rt(0, 1, 10, 8), a.Union(b))
	require.Equal(t, a.Union(b), b.Union(a))
}

func TestRectDistance(t *testing.T) {
	r := geom.Rt[uint8](0, 0, 10, 10)
	require.Equal(t, 0.0, r.Distance(geom.Pt[uint8](5, 5)))
	require.Equal(t, 0.0, r.Distance(geom.Pt[uint8](10, 3)))
	require.Equal(t, 10.0, r.Distance(geom.Pt[uint8](20, 10)))
	require.Equal(t, 5.0, r.Distance(geom.Pt[uint8](13, 14)))
}

func TestGridPoints(t *testing.T) {
	points := slices.Collect(geom.GridPoints(geom.Rt[uint8](1, 1, 2, 3)))
	require.Equal(t, []geom.Point[uint8]{
		geom.Pt[uint8](1, 1), geom.Pt[uint8](2, 1),
		geom.Pt[uint8](1, 2), geom.Pt[uint8](2, 2),
		geom.Pt[uint8](1, 3), geom.Pt[uint8](2, 3),
	}, points)

	edge := slices.Collect(geom.GridPoints(geom.Rt[uint8](254, 255, 255, 255)))
	require.Equal(t, []geom.Point[uint8]{geom.Pt[uint8](254, 255), geom.Pt[uint8](255, 255)}, edge)

	full := 0
	for range geom.GridPoints(geom.Rt[uint8](0, 0, 255, 255)) {
		full++
	}
	require.Equal(t, 256*256, full)

	inverted := geom.RectUnchecked(geom.Pt[uint8](5, 5), geom.Pt[uint8](0, 0))
	require.Empty(t, slices.Collect(geom.GridPoints(inverted)))
}

func TestGridPointsStop(t *testing.T) {
	var n int
	for range geom.GridPoints(geom.Rt[uint8](0, 0, 9, 9)) {
		n++
		if n == 15 {
			break
		}
	}
	require.Equal(t, 15, n)
}
