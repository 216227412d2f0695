// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"sort"
)

// DefaultSpacing is the space left between adjacent bars.
const DefaultSpacing = 5

// Bar draws a rectangle for each record.
//
// Height is required. The vertical extent of each bar depends on Y
// (see BarDomainY): without Y, bars rise from zero; with a discrete
// Y, the bars at each X are stacked in draw order; with a continuous
// Y, each bar spans from Y to Y+Height.
//
// Horizontally, a bar with X2 spans from X to X2. Otherwise, a bar
// with a discrete X fills its band of the X scale, a bar with a
// continuous X is centered on X, and bars without X are laid out left
// to right in draw order.
type Bar struct {
	X, X2, Y, Height Encoding

	// Color is the fill color. It defaults to "black".
	Color Encoding

	// Stroke is the outline color. It defaults to none (nil).
	Stroke Encoding

	// GroupX and GroupY name categorical fields that determine
	// draw order: records are ordered by the first appearance of
	// their GroupX value, then their GroupY value. Order within a
	// group follows the data.
	GroupX, GroupY string

	// Spacing is the gap between adjacent bars. If zero,
	// DefaultSpacing is used.
	Spacing float64

	// Types optionally declares the kind of a channel's data.
	Types map[Channel]DataType

	// Data, if non-nil, is drawn instead of the plot's data.
	Data Dataset
}

func (b *Bar) check() error {
	if b.Types[Height].Kind == DiscreteKind {
		return fmt.Errorf("bar: %q must be continuous", Height)
	}
	return require("bar", map[Channel]Encoding{Height: b.Height})
}

// Register registers the bar's "x", "y", and "color" domains.
func (b *Bar) Register(p *Plot, id MarkID) error {
	if err := p.check("Bar.Register"); err != nil {
		return err
	}
	if err := b.check(); err != nil {
		return err
	}
	data := markData(p, b.Data)

	err := registerMerged(p, id, X,
		channelDomain(data, b.X, b.Types[X]),
		channelDomain(data, b.X2, b.Types[X]))
	if err != nil {
		return err
	}
	if err := p.RegisterDomain(id, Y, BarDomainY(data, b.Y, b.Height, b.Types[Y], b.Types[Height])); err != nil {
		return err
	}
	return registerMerged(p, id, Color,
		channelDomain(data, b.Color, b.Types[Color]),
		channelDomain(data, b.Stroke, b.Types[Color]))
}

// Resolve returns a Rect for every record with a numeric height, in
// draw order.
func (b *Bar) Resolve(p *Plot) ([]Shape, error) {
	if err := p.check("Bar.Resolve"); err != nil {
		return nil, err
	}
	if err := b.check(); err != nil {
		return nil, err
	}
	data := drawOrder(markData(p, b.Data), b.GroupX, b.GroupY)
	ss, err := scales(p, X, Y, Color)
	if err != nil {
		return nil, err
	}
	xs, ys, cs := ss[0], ss[1], ss[2]

	spacing := b.Spacing
	if spacing == 0 {
		spacing = DefaultSpacing
	}

	xFn := DataFunc(b.X, nil)
	xPos, x2Pos := ChannelFunc(b.X, xs, nil), ChannelFunc(b.X2, xs, nil)
	yFn, hFn := DataFunc(b.Y, nil), DataFunc(b.Height, nil)
	fill := ChannelFunc(b.Color, cs, "black")
	stroke := ChannelFunc(b.Stroke, cs, nil)

	yKind := b.Types[Y].Kind
	if yKind == Unknown && !b.Y.IsZero() {
		yKind = firstKind(data, yFn)
	}

	// Running stack heights for discrete Y, keyed by raw X value.
	stacks := make(map[interface{}]float64)
	slot := p.width / float64(len(data))
	rects := make([]Shape, 0, len(data))
	for i, d := range data {
		h, ok := toFloat(hFn(d))
		if !ok {
			continue
		}

		// Horizontal extent.
		var left, width float64
		switch {
		case b.X.IsZero():
			left, width = float64(i)*slot+spacing/2, slot-spacing
			if yKind == DiscreteKind {
				left, width = spacing/2, p.width-spacing
			}
		case !b.X2.IsZero():
			x1, x2 := floatOf(xPos(d)), floatOf(x2Pos(d))
			left, width = math.Min(x1, x2), math.Abs(x2-x1)
		default:
			bw := slot
			if ord, ok := xs.(*OrdinalScale); ok {
				bw = ord.Bandwidth()
			}
			width = bw - spacing
			left = floatOf(xPos(d)) - width/2
		}

		// Vertical extent, in domain units.
		var lo, hi float64
		switch {
		case b.Y.IsZero():
			lo, hi = 0, h
		case yKind == DiscreteKind:
			var key interface{}
			if !b.X.IsZero() {
				key = xFn(d)
			}
			lo = stacks[key]
			hi = lo + h
			stacks[key] = hi
		default:
			lo = floatOf(yFn(d))
			hi = lo + h
		}
		bottom, top := mapFloat(ys, lo), mapFloat(ys, hi)

		rects = append(rects, Rect{
			X:      left,
			Y:      math.Min(bottom, top),
			Width:  width,
			Height: math.Abs(bottom - top),
			Fill:   fill(d),
			Stroke: stroke(d),
			Datum:  d,
		})
	}
	return rects, nil
}

// drawOrder returns data stably sorted by the first-appearance order
// of the gx field and then the gy field, consistent with the grid
// order of GroupBy. Records lacking a field sort after those that
// have it.
func drawOrder(data Dataset, gx, gy string) Dataset {
	if gx == "" && gy == "" {
		return data
	}
	rank := func(field string) func(Datum) int {
		if field == "" {
			return func(Datum) int { return 0 }
		}
		lv := levels(data, field)
		return func(d Datum) int {
			if v, ok := d[field]; ok && v != nil {
				return lv.Index(v)
			}
			return len(lv)
		}
	}
	rx, ry := rank(gx), rank(gy)
	out := append(Dataset(nil), data...)
	sort.SliceStable(out, func(i, j int) bool {
		xi, xj := rx(out[i]), rx(out[j])
		if xi != xj {
			return xi < xj
		}
		return ry(out[i]) < ry(out[j])
	})
	return out
}
