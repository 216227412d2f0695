// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-marks/plot"
	"github.com/ajstarks/svgo"
	"honnef.co/go/curve"
)

// errWriter records the first error from w and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes shapes to w as a width x height SVG document.
func SVG(w io.Writer, shapes []plot.Shape, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	for _, s := range shapes {
		svgShape(canvas, s)
	}
	canvas.End()
	return ew.err
}

func svgShape(canvas *svg.SVG, s plot.Shape) {
	switch s := s.(type) {
	case plot.Rect:
		if !finite(s.X, s.Y, s.Width, s.Height) {
			return
		}
		canvas.Rect(round(s.X), round(s.Y), round(s.Width), round(s.Height),
			cssPaint("fill", s.Fill)+";"+cssPaint("stroke", s.Stroke))

	case plot.Circle:
		if !finite(s.CX, s.CY, s.R) {
			return
		}
		canvas.Circle(round(s.CX), round(s.CY), round(s.R),
			cssPaint("fill", s.Fill)+";"+cssPaint("stroke", s.Stroke))

	case plot.Path:
		d := pathData(s)
		if d == "" {
			return
		}
		style := cssPaint("stroke", s.Stroke) + ";fill:none;stroke-width:" +
			strconv.FormatFloat(s.StrokeWidth, 'g', 6, 64)
		canvas.Path(d, style)

	default:
		Warning.Printf("unknown shape %T; ignoring", s)
	}
}

// pathData returns the SVG path data for p, or "" if p can't be
// drawn.
func pathData(p plot.Path) string {
	path, ok := bezPath(p)
	if !ok {
		return ""
	}
	var d []byte
	for el := range path.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			d = append(d, 'M')
			d = appendPoint(d, el.P0)
		case curve.LineToKind:
			d = append(d, 'L')
			d = appendPoint(d, el.P0)
		case curve.CubicToKind:
			d = append(d, 'C')
			d = appendPoint(d, el.P0)
			d = append(d, ',')
			d = appendPoint(d, el.P1)
			d = append(d, ',')
			d = appendPoint(d, el.P2)
		}
	}
	return string(d)
}

func appendPoint(buf []byte, pt curve.Point) []byte {
	buf = strconv.AppendFloat(buf, pt.X, 'g', 6, 64)
	buf = append(buf, ' ')
	return strconv.AppendFloat(buf, pt.Y, 'g', 6, 64)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
