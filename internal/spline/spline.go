// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spline converts point sequences into smooth cubic Bézier
// paths.
package spline

import (
	"math"

	"honnef.co/go/curve"
)

// epsilon is the smallest knot interval treated as non-degenerate.
const epsilon = 1e-12

// CatmullRom returns a Bézier path for the Catmull-Rom spline through
// pts. The path starts with a MoveTo pts[0] followed by one CubicTo
// per remaining point. alpha parameterizes the knot spacing: 0 is
// uniform, 0.5 is centripetal, and 1 is chordal.
//
// The spline passes through every point. The end points are
// duplicated to supply the missing neighbors; for alpha > 0 this
// leaves the outer control point of each end segment on the end
// point. Two points produce a single straight segment. Fewer than two
// points produce a nil path.
func CatmullRom(pts []curve.Point, alpha float64) curve.BezPath {
	if len(pts) < 2 {
		return nil
	}
	path := make(curve.BezPath, 0, len(pts))
	path.MoveTo(pts[0])
	if len(pts) == 2 {
		path.CubicTo(pts[0], pts[1], pts[1])
		return path
	}
	for i := 0; i+1 < len(pts); i++ {
		p0, p1, p2 := pts[max(i-1, 0)], pts[i], pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]
		c1, c2 := controls(p0, p1, p2, p3, alpha)
		path.CubicTo(c1, c2, p2)
	}
	return path
}

// Straight returns a polyline path through pts, or nil if there are
// fewer than two points.
func Straight(pts []curve.Point) curve.BezPath {
	if len(pts) < 2 {
		return nil
	}
	path := make(curve.BezPath, 0, len(pts))
	path.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		path.LineTo(pt)
	}
	return path
}

// controls returns the Bézier control points of the spline between
// p1 and p2.
func controls(p0, p1, p2, p3 curve.Point, alpha float64) (c1, c2 curve.Point) {
	l01, l12, l23 := dist(p0, p1, alpha), dist(p1, p2, alpha), dist(p2, p3, alpha)
	l01_2, l12_2, l23_2 := l01*l01, l12*l12, l23*l23

	c1, c2 = p1, p2
	if l01 > epsilon {
		a := 2*l01_2 + 3*l01*l12 + l12_2
		n := 3 * l01 * (l01 + l12)
		c1.X = (p1.X*a - p0.X*l12_2 + p2.X*l01_2) / n
		c1.Y = (p1.Y*a - p0.Y*l12_2 + p2.Y*l01_2) / n
	}
	if l23 > epsilon {
		b := 2*l23_2 + 3*l23*l12 + l12_2
		m := 3 * l23 * (l23 + l12)
		c2.X = (p2.X*b + p1.X*l23_2 - p3.X*l12_2) / m
		c2.Y = (p2.Y*b + p1.Y*l23_2 - p3.Y*l12_2) / m
	}
	return c1, c2
}

// dist returns the distance between p and q raised to alpha.
func dist(p, q curve.Point, alpha float64) float64 {
	return math.Pow(math.Hypot(q.X-p.X, q.Y-p.Y), alpha)
}
