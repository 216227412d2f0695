// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws resolved plot shapes as SVG or PNG images.
package render

import (
	"log"
	"math"
	"os"

	"github.com/aclements/go-marks/internal/spline"
	"github.com/aclements/go-marks/plot"
	"honnef.co/go/curve"
)

// Warning is the logger for problems that don't prevent rendering.
var Warning = log.New(os.Stderr, "[render] ", log.Lshortfile)

// centripetal is the Catmull-Rom knot parameter for curved paths.
const centripetal = 0.5

// bezPath returns the drawable path through p's points, skipping
// infinite ones. ok is false if fewer than two points remain.
func bezPath(p plot.Path) (path curve.BezPath, ok bool) {
	pts := make([]curve.Point, 0, len(p.Points))
	for _, pt := range p.Points {
		if math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			continue
		}
		pts = append(pts, curve.Pt(pt.X, pt.Y))
	}
	if len(pts) < 2 {
		if len(p.Points) > 0 {
			Warning.Print("cannot draw path through fewer than 2 points; ignoring")
		}
		return nil, false
	}
	if p.Curved {
		return spline.CatmullRom(pts, centripetal), true
	}
	return spline.Straight(pts), true
}
