// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// DefaultRadius is the radius of a Dot with no explicit radius.
const DefaultRadius = 5

// Dot draws a circle at (X, Y) for each record.
type Dot struct {
	X, Y Encoding

	// Color is the fill color. It defaults to "black".
	Color Encoding

	// Stroke is the outline color. It defaults to none (nil).
	Stroke Encoding

	// R is the radius of each dot. If zero, DefaultRadius is used.
	R float64

	Types map[Channel]DataType
	Data  Dataset
}

func (m *Dot) check() error {
	return require("dot", map[Channel]Encoding{X: m.X, Y: m.Y})
}

func (m *Dot) Register(p *Plot, id MarkID) error {
	if err := p.check("Dot.Register"); err != nil {
		return err
	}
	if err := m.check(); err != nil {
		return err
	}
	data := markData(p, m.Data)
	if err := registerMerged(p, id, X, channelDomain(data, m.X, m.Types[X])); err != nil {
		return err
	}
	if err := registerMerged(p, id, Y, channelDomain(data, m.Y, m.Types[Y])); err != nil {
		return err
	}
	return registerMerged(p, id, Color,
		channelDomain(data, m.Color, m.Types[Color]),
		channelDomain(data, m.Stroke, m.Types[Color]))
}

func (m *Dot) Resolve(p *Plot) ([]Shape, error) {
	if err := p.check("Dot.Resolve"); err != nil {
		return nil, err
	}
	if err := m.check(); err != nil {
		return nil, err
	}
	ss, err := scales(p, X, Y, Color)
	if err != nil {
		return nil, err
	}
	x := ChannelFunc(m.X, ss[0], nil)
	y := ChannelFunc(m.Y, ss[1], nil)
	fill := ChannelFunc(m.Color, ss[2], "black")
	stroke := ChannelFunc(m.Stroke, ss[2], nil)

	r := m.R
	if r == 0 {
		r = DefaultRadius
	}
	data := markData(p, m.Data)
	dots := make([]Shape, len(data))
	for i, d := range data {
		dots[i] = Circle{
			CX:     floatOf(x(d)),
			CY:     floatOf(y(d)),
			R:      r,
			Fill:   fill(d),
			Stroke: stroke(d),
			Datum:  d,
		}
	}
	return dots, nil
}
