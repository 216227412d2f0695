// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-marks/plot"
	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

// chart is a chart description, as read from a YAML file.
type chart struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Data is inline data, drawn in addition to any input files.
	Data []map[string]interface{} `yaml:"data"`

	// Facet lays the chart out as a grid of sub-plots, one per
	// combination of the X and Y fields.
	Facet struct {
		X string `yaml:"x"`
		Y string `yaml:"y"`
	} `yaml:"facet"`

	Marks []*markSpec `yaml:"marks"`
}

// markSpec describes one mark. Encoding values that are strings name
// a field, or are used literally by records that lack that field.
// Numeric encoding values are constants.
type markSpec struct {
	Type string `yaml:"type"`

	X      interface{} `yaml:"x"`
	X2     interface{} `yaml:"x2"`
	Y      interface{} `yaml:"y"`
	Height interface{} `yaml:"height"`
	DX     interface{} `yaml:"dx"`
	DY     interface{} `yaml:"dy"`
	Color  interface{} `yaml:"color"`
	Stroke interface{} `yaml:"stroke"`

	GroupX      string  `yaml:"groupx"`
	GroupY      string  `yaml:"groupy"`
	Spacing     float64 `yaml:"spacing"`
	R           float64 `yaml:"r"`
	StrokeWidth float64 `yaml:"strokewidth"`
	Straight    bool    `yaml:"straight"`

	// Types maps channel names to "continuous", "continuous zero",
	// "discrete", or "discrete ordered".
	Types map[string]string `yaml:"types"`
}

// readChart decodes a chart description from r.
func readChart(r io.Reader) (*chart, error) {
	var c chart
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing chart: %w", err)
	}
	return &c, nil
}

// parseMark parses a mark from a command-line description such as
//
//	bar x=Fruit height="Number Eaten" color=steelblue
func parseMark(s string) (*markSpec, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("mark %q: %w", s, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty mark")
	}
	m := &markSpec{Type: words[0]}
	for _, w := range words[1:] {
		i := strings.Index(w, "=")
		if i < 0 {
			return nil, fmt.Errorf("mark %q: expected key=value, got %q", s, w)
		}
		if err := m.set(w[:i], w[i+1:]); err != nil {
			return nil, fmt.Errorf("mark %q: %w", s, err)
		}
	}
	return m, nil
}

// set sets attribute key of m from its command-line form.
func (m *markSpec) set(key, val string) error {
	var err error
	switch key {
	case "x":
		m.X = scalar(val)
	case "x2":
		m.X2 = scalar(val)
	case "y":
		m.Y = scalar(val)
	case "height":
		m.Height = scalar(val)
	case "dx":
		m.DX = scalar(val)
	case "dy":
		m.DY = scalar(val)
	case "color":
		m.Color = scalar(val)
	case "stroke":
		m.Stroke = scalar(val)
	case "groupx":
		m.GroupX = val
	case "groupy":
		m.GroupY = val
	case "spacing":
		m.Spacing, err = strconv.ParseFloat(val, 64)
	case "r":
		m.R, err = strconv.ParseFloat(val, 64)
	case "strokewidth":
		m.StrokeWidth, err = strconv.ParseFloat(val, 64)
	case "straight":
		m.Straight, err = strconv.ParseBool(val)
	default:
		if ch := strings.TrimSuffix(key, ".type"); ch != key {
			if m.Types == nil {
				m.Types = make(map[string]string)
			}
			m.Types[ch] = val
			return nil
		}
		return fmt.Errorf("unknown attribute %q", key)
	}
	if err != nil {
		return fmt.Errorf("attribute %q: %w", key, err)
	}
	return nil
}

// scalar returns s as a number if it parses as one.
func scalar(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func encoding(v interface{}) (plot.Encoding, error) {
	switch v := v.(type) {
	case nil:
		return plot.Encoding{}, nil
	case string:
		return plot.Key(v), nil
	case int, int64, uint64, float64:
		return plot.Const(v), nil
	}
	return plot.Encoding{}, fmt.Errorf("bad encoding %v (%T)", v, v)
}

func dataType(s string) (plot.DataType, error) {
	switch strings.Join(strings.Fields(s), " ") {
	case "continuous":
		return plot.ContinuousType(false), nil
	case "continuous zero":
		return plot.ContinuousType(true), nil
	case "discrete":
		return plot.DiscreteType(false), nil
	case "discrete ordered":
		return plot.DiscreteType(true), nil
	}
	return plot.DataType{}, fmt.Errorf("unknown data type %q", s)
}

var channels = map[string]plot.Channel{
	"x": plot.X, "x2": plot.X2, "y": plot.Y, "height": plot.Height,
	"dx": plot.DX, "dy": plot.DY, "color": plot.Color, "stroke": plot.Stroke,
}

// build returns a new mark described by m.
func (m *markSpec) build() (plot.Mark, error) {
	var encs [8]plot.Encoding
	for i, v := range []interface{}{m.X, m.X2, m.Y, m.Height, m.DX, m.DY, m.Color, m.Stroke} {
		e, err := encoding(v)
		if err != nil {
			return nil, fmt.Errorf("%s mark: %w", m.Type, err)
		}
		encs[i] = e
	}
	x, x2, y, height, dx, dy, color, stroke := encs[0], encs[1], encs[2], encs[3], encs[4], encs[5], encs[6], encs[7]

	var types map[plot.Channel]plot.DataType
	for name, s := range m.Types {
		ch, ok := channels[name]
		if !ok {
			return nil, fmt.Errorf("%s mark: unknown channel %q", m.Type, name)
		}
		dt, err := dataType(s)
		if err != nil {
			return nil, fmt.Errorf("%s mark: %w", m.Type, err)
		}
		if types == nil {
			types = make(map[plot.Channel]plot.DataType)
		}
		types[ch] = dt
	}

	switch m.Type {
	case "bar":
		return &plot.Bar{
			X: x, X2: x2, Y: y, Height: height,
			Color: color, Stroke: stroke,
			GroupX: m.GroupX, GroupY: m.GroupY,
			Spacing: m.Spacing,
			Types:   types,
		}, nil
	case "dot":
		return &plot.Dot{
			X: x, Y: y,
			Color: color, Stroke: stroke,
			R:     m.R,
			Types: types,
		}, nil
	case "line":
		return &plot.Line{
			X: x, Y: y, DX: dx, DY: dy,
			Stroke:      m.Stroke,
			StrokeWidth: m.StrokeWidth,
			Straight:    m.Straight,
			Types:       types,
		}, nil
	}
	return nil, fmt.Errorf("unknown mark type %q", m.Type)
}

// newPlot builds a width x height plot of data with c's marks.
func (c *chart) newPlot(data plot.Dataset, width, height float64) (*plot.Plot, error) {
	p := plot.New(data, width, height)
	add := func(p *plot.Plot) error {
		for _, m := range c.Marks {
			mark, err := m.build()
			if err != nil {
				return err
			}
			if _, err := p.Add(mark); err != nil {
				return err
			}
		}
		return nil
	}

	var err error
	if c.Facet.X != "" || c.Facet.Y != "" {
		err = p.Facet(c.Facet.X, c.Facet.Y, func(_, _ int, cell *plot.Plot) error {
			return add(cell)
		})
	} else {
		err = add(p)
	}
	if err != nil {
		p.Dispose()
		return nil, err
	}
	return p, nil
}
