// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "math"

// A Shape is the resolved output of a mark for a renderer. Shape
// coordinates are in pixels with the origin at the top left of the
// plot. Color fields hold either a color.Color produced by a scale or
// a literal value (typically a color name string) passed through
// from an encoding.
type Shape interface {
	// Translate returns a copy of the shape offset by (dx, dy).
	Translate(dx, dy float64) Shape
}

// Rect is a rectangle produced by a Bar.
type Rect struct {
	X, Y, Width, Height float64
	Fill, Stroke        interface{}

	// Datum is the record this rectangle represents.
	Datum Datum
}

func (r Rect) Translate(dx, dy float64) Shape {
	r.X += dx
	r.Y += dy
	return r
}

// Circle is a point produced by a Dot.
type Circle struct {
	CX, CY, R    float64
	Fill, Stroke interface{}
	Datum        Datum
}

func (c Circle) Translate(dx, dy float64) Shape {
	c.CX += dx
	c.CY += dy
	return c
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Path is a polyline produced by a Line. If Curved is set, the
// renderer should draw a smooth curve through Points instead of
// straight segments.
type Path struct {
	Points      []Point
	Stroke      interface{}
	StrokeWidth float64
	Curved      bool
}

func (p Path) Translate(dx, dy float64) Shape {
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = Point{pt.X + dx, pt.Y + dy}
	}
	p.Points = pts
	return p
}

// FilterPoints converts coordinate pairs to Points, dropping any pair
// with a missing, non-numeric, or NaN component.
func FilterPoints(coords [][2]interface{}) []Point {
	pts := make([]Point, 0, len(coords))
	for _, c := range coords {
		x, ok1 := toFloat(c[0])
		y, ok2 := toFloat(c[1])
		if !ok1 || !ok2 || math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		pts = append(pts, Point{x, y})
	}
	return pts
}
