// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// DefaultStrokeWidth is the stroke width of a Line with no explicit
// width.
const DefaultStrokeWidth = 1.5

// Line connects (X+DX, Y+DY) for each record, in data order, with a
// single path.
//
// DX and DY default to 0. Like X and Y, data-derived offsets are
// mapped through the position scales; constant offsets are in pixels.
type Line struct {
	X, Y, DX, DY Encoding

	// Stroke is the line color. It defaults to "black".
	Stroke interface{}

	// StrokeWidth defaults to DefaultStrokeWidth.
	StrokeWidth float64

	// Straight draws straight segments between points instead of
	// a smooth curve.
	Straight bool

	Types map[Channel]DataType
	Data  Dataset
}

func (l *Line) check() error {
	return require("line", map[Channel]Encoding{X: l.X, Y: l.Y})
}

func (l *Line) Register(p *Plot, id MarkID) error {
	if err := p.check("Line.Register"); err != nil {
		return err
	}
	if err := l.check(); err != nil {
		return err
	}
	data := markData(p, l.Data)
	if err := registerMerged(p, id, X, channelDomain(data, l.X, l.Types[X])); err != nil {
		return err
	}
	return registerMerged(p, id, Y, channelDomain(data, l.Y, l.Types[Y]))
}

// Resolve returns a single Path. Records whose position is missing
// or NaN are left out of the path.
func (l *Line) Resolve(p *Plot) ([]Shape, error) {
	if err := p.check("Line.Resolve"); err != nil {
		return nil, err
	}
	if err := l.check(); err != nil {
		return nil, err
	}
	ss, err := scales(p, X, Y)
	if err != nil {
		return nil, err
	}
	xs, ys := ss[0], ss[1]
	x, dx := ChannelFunc(l.X, xs, nil), ChannelFunc(l.DX, xs, 0)
	y, dy := ChannelFunc(l.Y, ys, nil), ChannelFunc(l.DY, ys, 0)

	data := markData(p, l.Data)
	coords := make([][2]interface{}, len(data))
	for i, d := range data {
		coords[i] = [2]interface{}{
			sum(x(d), dx(d)),
			sum(y(d), dy(d)),
		}
	}
	pts := FilterPoints(coords)
	if n := len(coords) - len(pts); n > 0 {
		Warning.Printf("line: dropped %d of %d points with missing coordinates", n, len(coords))
	}

	stroke, width := l.Stroke, l.StrokeWidth
	if stroke == nil {
		stroke = "black"
	}
	if width == 0 {
		width = DefaultStrokeWidth
	}
	return []Shape{Path{pts, stroke, width, !l.Straight}}, nil
}

// sum adds two numeric values. It returns nil if either is missing or
// not numeric.
func sum(a, b interface{}) interface{} {
	x, ok1 := toFloat(a)
	y, ok2 := toFloat(b)
	if !ok1 || !ok2 {
		return nil
	}
	return x + y
}
