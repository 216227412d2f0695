// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/png"
	"io"
	"iter"

	"github.com/aclements/go-marks/plot"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"
)

// tolerance is the maximum distance in pixels between a curve and
// the line segments that approximate it.
const tolerance = 0.05

// Raster draws shapes onto a new width x height image with a white
// background.
func Raster(shapes []plot.Shape, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r := &rasterizer{dst: img, z: vector.NewRasterizer(width, height)}
	for _, s := range shapes {
		r.shape(s)
	}
	return img
}

// PNG writes shapes to w as a width x height PNG image.
//
// If supersample > 1, the shapes are rasterized at supersample times
// the size and filtered down. This removes the faint seams left
// between abutting shapes.
func PNG(w io.Writer, shapes []plot.Shape, width, height, supersample int) error {
	if supersample <= 1 {
		return png.Encode(w, Raster(shapes, width, height))
	}
	big := Raster(scale(shapes, float64(supersample)), width*supersample, height*supersample)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(img, img.Bounds(), big, big.Bounds(), draw.Src, nil)
	return png.Encode(w, img)
}

// scale returns shapes with all coordinates and sizes multiplied by k.
func scale(shapes []plot.Shape, k float64) []plot.Shape {
	out := make([]plot.Shape, len(shapes))
	for i, s := range shapes {
		switch s := s.(type) {
		case plot.Rect:
			s.X, s.Y, s.Width, s.Height = k*s.X, k*s.Y, k*s.Width, k*s.Height
			out[i] = s
		case plot.Circle:
			s.CX, s.CY, s.R = k*s.CX, k*s.CY, k*s.R
			out[i] = s
		case plot.Path:
			pts := make([]plot.Point, len(s.Points))
			for j, pt := range s.Points {
				pts[j] = plot.Point{X: k * pt.X, Y: k * pt.Y}
			}
			s.Points, s.StrokeWidth = pts, k*s.StrokeWidth
			out[i] = s
		default:
			out[i] = s
		}
	}
	return out
}

type rasterizer struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

// outline is the stroke style for rect and circle borders, with SVG's
// default joins and caps. Paths use it with their own width.
var outline = curve.Stroke{
	Width:      1,
	Join:       curve.MiterJoin,
	MiterLimit: 4,
	StartCap:   curve.ButtCap,
	EndCap:     curve.ButtCap,
}

// fill composites the rasterizer's current path onto dst in paint v
// and resets the path.
func (r *rasterizer) fill(v interface{}) {
	b := r.dst.Bounds()
	c, ok := ColorOf(v)
	if ok {
		r.z.DrawOp = draw.Over
		r.z.Draw(r.dst, b, image.NewUniform(c), image.Point{})
	} else if v != nil {
		Warning.Printf("unknown color %v; not painting", v)
	}
	r.z.Reset(b.Dx(), b.Dy())
}

// add flattens seq into the rasterizer's current path. Open subpaths
// are closed, as filling requires.
func (r *rasterizer) add(seq iter.Seq[curve.PathElement]) {
	open := false
	for el := range curve.Flatten(seq, tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				r.z.ClosePath()
			}
			r.z.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			open = true
		case curve.LineToKind:
			r.z.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.ClosePathKind:
			r.z.ClosePath()
			open = false
		}
	}
	if open {
		r.z.ClosePath()
	}
}

// stroke adds the outline of seq drawn with style.
func (r *rasterizer) stroke(seq iter.Seq[curve.PathElement], style curve.Stroke) {
	r.add(curve.StrokePath(seq, style, curve.StrokeOpts{}, tolerance))
}

func (r *rasterizer) shape(s plot.Shape) {
	switch s := s.(type) {
	case plot.Rect:
		if !finite(s.X, s.Y, s.Width, s.Height) {
			return
		}
		rect := curve.Rect{X0: s.X, Y0: s.Y, X1: s.X + s.Width, Y1: s.Y + s.Height}
		r.add(rect.PathElements(tolerance))
		r.fill(s.Fill)
		if s.Stroke != nil {
			r.stroke(rect.PathElements(tolerance), outline)
			r.fill(s.Stroke)
		}

	case plot.Circle:
		if !finite(s.CX, s.CY, s.R) {
			return
		}
		c := curve.Circle{Center: curve.Pt(s.CX, s.CY), Radius: s.R}
		r.add(c.PathElements(tolerance))
		r.fill(s.Fill)
		if s.Stroke != nil {
			r.stroke(c.PathElements(tolerance), outline)
			r.fill(s.Stroke)
		}

	case plot.Path:
		path, ok := bezPath(s)
		if !ok || s.StrokeWidth <= 0 {
			return
		}
		style := outline
		style.Width = s.StrokeWidth
		r.stroke(path.Elements(), style)
		r.fill(s.Stroke)

	default:
		Warning.Printf("unknown shape %T; ignoring", s)
	}
}
