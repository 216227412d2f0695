// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

import (
	"math"
	"reflect"
	"testing"

	"honnef.co/go/curve"
)

func near(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

func pts(xy ...float64) []curve.Point {
	var out []curve.Point
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, curve.Pt(xy[i], xy[i+1]))
	}
	return out
}

func TestCatmullRomShort(t *testing.T) {
	if path := CatmullRom(nil, 0.5); path != nil {
		t.Errorf("no points: want nil; got %v", path)
	}
	if path := CatmullRom(pts(1, 2), 0.5); path != nil {
		t.Errorf("one point: want nil; got %v", path)
	}

	path := CatmullRom(pts(0, 0, 3, 4), 0.5)
	want := curve.BezPath{
		curve.MoveTo(curve.Pt(0, 0)),
		curve.CubicTo(curve.Pt(0, 0), curve.Pt(3, 4), curve.Pt(3, 4)),
	}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("two points: want %v; got %v", want, path)
	}
}

func TestCatmullRomCollinear(t *testing.T) {
	line := pts(0, 0, 1, 0, 2, 0, 3, 0)
	for _, alpha := range []float64{0, 0.5, 1} {
		path := CatmullRom(line, alpha)
		if len(path) != 4 || path[0].Kind != curve.MoveToKind {
			t.Fatalf("alpha=%v: want MoveTo and 3 cubics; got %v", alpha, path)
		}
		for i, el := range path[1:] {
			if el.Kind != curve.CubicToKind {
				t.Fatalf("alpha=%v: element %d is %v; want CubicTo", alpha, i+1, el.Kind)
			}
			if el.P2 != line[i+1] {
				t.Errorf("alpha=%v: segment %d ends at %v; want %v", alpha, i, el.P2, line[i+1])
			}
			// Control points of a straight run stay on the line
			// and within the segment.
			for _, c := range []curve.Point{el.P0, el.P1} {
				if c.Y != 0 || c.X < line[i].X || c.X > line[i+1].X {
					t.Errorf("alpha=%v: segment %d control %v off the line", alpha, i, c)
				}
			}
		}
	}
}

func TestCatmullRomCentripetal(t *testing.T) {
	path := CatmullRom(pts(0, 0, 1, 0, 2, 0), 0.5)
	first, last := path[1], path[2]
	// End segments keep their outer control on the end point.
	if first.P0 != curve.Pt(0, 0) {
		t.Errorf("first C1 = %v; want (0,0)", first.P0)
	}
	if last.P1 != curve.Pt(2, 0) {
		t.Errorf("last C2 = %v; want (2,0)", last.P1)
	}
	if !near(first.P1.X, 2.0/3) {
		t.Errorf("first C2.X = %v; want 2/3", first.P1.X)
	}
	if !near(last.P0.X, 4.0/3) {
		t.Errorf("last C1.X = %v; want 4/3", last.P0.X)
	}
}

func TestCatmullRomRepeated(t *testing.T) {
	// Coincident points must not produce NaN controls.
	path := CatmullRom(pts(0, 0, 0, 0, 1, 1), 0.5)
	for i, el := range path {
		for _, c := range []curve.Point{el.P0, el.P1, el.P2} {
			if math.IsNaN(c.X) || math.IsNaN(c.Y) {
				t.Errorf("element %d: NaN in %v", i, el)
			}
		}
	}
}

func TestStraight(t *testing.T) {
	if path := Straight(pts(1, 1)); path != nil {
		t.Errorf("one point: want nil; got %v", path)
	}
	path := Straight(pts(0, 0, 1, 2, 3, 4))
	want := curve.BezPath{
		curve.MoveTo(curve.Pt(0, 0)),
		curve.LineTo(curve.Pt(1, 2)),
		curve.LineTo(curve.Pt(3, 4)),
	}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("want %v; got %v", want, path)
	}
}
