// Package raster connects shapes to the standard library's image
// packages.
package raster

import (
	"image"
	"image/color"

	"deedles.dev/xshape/shape"
	"golang.org/x/image/draw"
)

// Mask is an image whose pixels are opaque where they are within a
// shape and transparent everywhere else. It can be used as the mask
// argument to draw.DrawMask.
type Mask struct {
	shape shape.Shape
	rect  image.Rectangle
}

// NewMask returns a mask for s. Its bounds are the bounding box of s.
func NewMask(s shape.Shape) *Mask {
	return &Mask{shape: s, rect: Bounds(s)}
}

// Bounds converts the bounding box of s to an image.Rectangle. Because
// image.Rectangle excludes its Max point, the result is one pixel
// larger than the bounding box on each axis.
func Bounds(s shape.BoundingBox) image.Rectangle {
	b := s.BBox()
	return image.Rect(int(b.Min.X), int(b.Min.Y), int(b.Max.X)+1, int(b.Max.Y)+1)
}

func (m *Mask) Bounds() image.Rectangle { return m.rect }

func (m *Mask) ColorModel() color.Model { return color.Alpha16Model }

func (m *Mask) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.rect)) {
		return color.Transparent
	}

	if m.shape.Within(shape.Pt(uint8(x), uint8(y))) {
		return color.Opaque
	}
	return color.Transparent
}

// Rasterize returns an alpha image covering the bounding box of s with
// every point inside of s set to opaque.
func Rasterize(s shape.Shape) *image.Alpha {
	img := image.NewAlpha(Bounds(s))
	for _, p := range s.PointsInside() {
		img.SetAlpha(int(p.X), int(p.Y), color.Alpha{A: 0xFF})
	}
	return img
}

// Fill draws s onto dst in the color c, leaving pixels outside of s
// untouched.
func Fill(dst draw.Image, s shape.Shape, c color.Color) {
	mask := NewMask(s)
	r := mask.Bounds().Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, r.Min, draw.Over)
}

// Render returns a copy of the rasterized form of s scaled up by an
// integer factor, with each grid point becoming a scale-by-scale block
// of pixels. The result's origin is the scaled origin of the shape's
// bounding box. It panics if scale is less than 1.
func Render(s shape.Shape, scale int) *image.Alpha {
	if scale < 1 {
		panic("scale must be at least 1")
	}

	src := Rasterize(s)
	b := src.Bounds()
	dst := image.NewAlpha(image.Rectangle{Min: b.Min.Mul(scale), Max: b.Max.Mul(scale)})
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
