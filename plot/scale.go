// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
)

// A Scale maps values in a domain to values in a visual range.
//
// Scales also report the domain and range they were built from so
// that consumers such as axis tick generators can map back to data
// values.
type Scale interface {
	// Map maps a domain value to a range value.
	Map(x interface{}) interface{}

	// Domain returns the scale's input domain. It may be nil for
	// scales that accept any value.
	Domain() Domain

	// Range returns the scale's output range. Its type depends on
	// the scale.
	Range() interface{}
}

// ScaleKind names a type of scale for NewScale.
type ScaleKind int

const (
	Linear ScaleKind = iota
)

func (k ScaleKind) String() string {
	switch k {
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("ScaleKind(%d)", int(k))
}

// NewScale returns a scale of the given kind mapping dom onto rng.
func NewScale(kind ScaleKind, dom Continuous, rng [2]float64) (Scale, error) {
	switch kind {
	case Linear:
		return NewLinearScale(dom, rng), nil
	}
	return nil, fmt.Errorf("unsupported scale kind %v", kind)
}

// LinearScale is an affine map from a Continuous domain to a pixel
// range. The range may be inverted (rng[0] > rng[1]).
//
// If the domain is empty or has zero width, Map returns NaN for every
// input. Callers must check for NaN results in that case.
type LinearScale struct {
	dom Continuous
	rng [2]float64
}

// NewLinearScale returns a linear scale mapping dom.Min to rng[0] and
// dom.Max to rng[1].
func NewLinearScale(dom Continuous, rng [2]float64) *LinearScale {
	return &LinearScale{dom, rng}
}

func (s *LinearScale) String() string {
	return fmt.Sprintf("linear %s => [%g,%g]", s.dom, s.rng[0], s.rng[1])
}

// Degenerate reports whether s cannot produce meaningful output
// because its domain is empty or a single point.
func (s *LinearScale) Degenerate() bool {
	return s.dom.Empty() || s.dom.Min == s.dom.Max
}

// MapFloat maps v from the domain to the range.
func (s *LinearScale) MapFloat(v float64) float64 {
	if s.Degenerate() {
		return math.NaN()
	}
	t := scale.Linear{Min: s.dom.Min, Max: s.dom.Max}.Map(v)
	return s.rng[0] + t*(s.rng[1]-s.rng[0])
}

// Map maps a numeric value to a float64 in the range. Non-numeric
// values map to NaN.
func (s *LinearScale) Map(x interface{}) interface{} {
	v, ok := toFloat(x)
	if !ok {
		return math.NaN()
	}
	return s.MapFloat(v)
}

// Invert maps a range value back to the domain.
func (s *LinearScale) Invert(y float64) float64 {
	if s.Degenerate() || s.rng[0] == s.rng[1] {
		return math.NaN()
	}
	t := (y - s.rng[0]) / (s.rng[1] - s.rng[0])
	return s.dom.Min + t*(s.dom.Max-s.dom.Min)
}

func (s *LinearScale) Domain() Domain { return s.dom }

func (s *LinearScale) Range() interface{} { return s.rng }

// Ticks returns at most max "nice" tick positions in the domain, in
// increasing order.
func (s *LinearScale) Ticks(max int) []float64 {
	if s.dom.Empty() || max < 1 {
		return nil
	}
	if s.dom.Min == s.dom.Max {
		return []float64{s.dom.Min}
	}
	ls := scale.Linear{Min: s.dom.Min, Max: s.dom.Max}
	major, _ := ls.Ticks(scale.TickOptions{Max: max})
	return major
}

// OrdinalScale maps the values of a Discrete domain to the centers of
// equal subdivisions of a pixel range.
type OrdinalScale struct {
	dom Discrete
	rng [2]float64
}

// NewOrdinalScale returns a positional scale for dom.
func NewOrdinalScale(dom Discrete, rng [2]float64) *OrdinalScale {
	return &OrdinalScale{dom, rng}
}

func (s *OrdinalScale) String() string {
	return fmt.Sprintf("ordinal %v => [%g,%g]", []interface{}(s.dom), s.rng[0], s.rng[1])
}

// Map returns the center of x's band, or NaN if x is not in the
// domain.
func (s *OrdinalScale) Map(x interface{}) interface{} {
	i := s.dom.Index(x)
	if i < 0 {
		return math.NaN()
	}
	t := (float64(i) + 0.5) / float64(len(s.dom))
	return s.rng[0] + t*(s.rng[1]-s.rng[0])
}

// Bandwidth returns the width of each value's band.
func (s *OrdinalScale) Bandwidth() float64 {
	if len(s.dom) == 0 {
		return 0
	}
	return math.Abs(s.rng[1]-s.rng[0]) / float64(len(s.dom))
}

func (s *OrdinalScale) Domain() Domain { return s.dom }

func (s *OrdinalScale) Range() interface{} { return s.rng }

// autoPalette is the discrete palette used by color scales.
var autoPalette = []color.Color{
	color.RGBA{0x4c, 0x72, 0xb0, 0xff},
	color.RGBA{0x55, 0xa8, 0x68, 0xff},
	color.RGBA{0xc4, 0x4e, 0x52, 0xff},
	color.RGBA{0x81, 0x72, 0xb2, 0xff},
	color.RGBA{0xcc, 0xb9, 0x74, 0xff},
	color.RGBA{0x64, 0xb5, 0xcd, 0xff},
}

// ColorScale maps a domain to colors. A continuous domain maps onto
// a sequential gradient; a discrete domain maps onto a categorical
// palette, cycling if there are more values than colors.
type ColorScale struct {
	dom      Domain
	gradient palette.Continuous
	levels   []color.Color
}

// NewColorScale returns the default color scale for dom.
func NewColorScale(dom Domain) *ColorScale {
	return &ColorScale{dom, palette.Viridis, autoPalette}
}

// Map returns a color.Color for x, or nil if x is outside a discrete
// domain or not numeric for a continuous domain.
func (s *ColorScale) Map(x interface{}) interface{} {
	switch dom := s.dom.(type) {
	case Continuous:
		v, ok := toFloat(x)
		if !ok || dom.Empty() {
			return nil
		}
		t := 0.5
		if dom.Min != dom.Max {
			t = scale.Linear{Min: dom.Min, Max: dom.Max, Clamp: true}.Map(v)
		}
		return s.gradient.Map(t)

	case Discrete:
		i := dom.Index(x)
		if i < 0 {
			return nil
		}
		return s.levels[i%len(s.levels)]
	}
	return nil
}

func (s *ColorScale) Domain() Domain { return s.dom }

// Range returns the palette: a palette.Continuous for continuous
// domains or a []color.Color for discrete domains.
func (s *ColorScale) Range() interface{} {
	if _, ok := s.dom.(Continuous); ok {
		return s.gradient
	}
	return s.levels
}

// Identity returns a scale that maps every value to itself.
func Identity() Scale {
	return identityScale{}
}

type identityScale struct{}

func (identityScale) Map(x interface{}) interface{} { return x }
func (identityScale) Domain() Domain                { return nil }
func (identityScale) Range() interface{}            { return nil }
