// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"context"
	"fmt"
)

// MarkID identifies a mark within a Plot. Domain contributions are
// keyed by MarkID.
type MarkID uint64

// A Mark is a visual primitive that maps each record of a dataset to
// a shape.
type Mark interface {
	// Register computes the mark's domain for each channel it
	// uses and registers it with p under id. Registering again
	// replaces the previous contribution.
	Register(p *Plot, id MarkID) error

	// Resolve maps the plot's data through the plot's scales and
	// returns the resulting shapes. The scales reflect every
	// registration made before Resolve is called.
	Resolve(p *Plot) ([]Shape, error)
}

// Plot is the shared state of one chart region: its data, its
// dimensions, and the domains registered by its marks. Scales are
// derived from the registered domains each time they are requested.
//
// A Plot is not safe for concurrent use.
type Plot struct {
	data          Dataset
	width, height float64

	// root is the top-level plot. Facet cells share the root's
	// registry and external scales.
	root *Plot
	reg  *registry

	scales map[Channel]Scale
	marks  []markEntry

	// Facet cells, laid out within this plot.
	cells []*facetCell
}

type markEntry struct {
	id   MarkID
	mark Mark
}

type registry struct {
	next     MarkID
	order    []MarkID
	domains  map[MarkID]map[Channel]Domain
	disposed bool
}

// An Option configures a Plot.
type Option func(*Plot)

// WithScale makes the plot use s for ch instead of deriving a scale
// from registered domains. ch must be X, Y, or Color.
func WithScale(ch Channel, s Scale) Option {
	return func(p *Plot) {
		p.scales[ch] = s
	}
}

// New returns a Plot over data with the given dimensions.
func New(data Dataset, width, height float64, opts ...Option) *Plot {
	p := &Plot{
		data:   data,
		width:  width,
		height: height,
		reg: &registry{
			domains: make(map[MarkID]map[Channel]Domain),
		},
		scales: make(map[Channel]Scale),
	}
	p.root = p
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Plot) check(op string) error {
	if p == nil || p.reg.disposed {
		return &ContextNotFoundError{op}
	}
	return nil
}

// Data returns the plot's dataset.
func (p *Plot) Data() Dataset { return p.data }

// Width returns the width of the plotting area.
func (p *Plot) Width() float64 { return p.width }

// Height returns the height of the plotting area.
func (p *Plot) Height() float64 { return p.height }

// Add adds m to p and returns its identity.
func (p *Plot) Add(m Mark) (MarkID, error) {
	if err := p.check("Add"); err != nil {
		return 0, err
	}
	id := p.newID()
	p.marks = append(p.marks, markEntry{id, m})
	return id, nil
}

// Replace replaces the mark with identity id by m. The old mark's
// contributions remain until the next Draw re-registers them.
func (p *Plot) Replace(id MarkID, m Mark) error {
	if err := p.check("Replace"); err != nil {
		return err
	}
	for i := range p.marks {
		if p.marks[i].id == id {
			p.marks[i].mark = m
			return nil
		}
	}
	return fmt.Errorf("no mark with id %d", id)
}

// Remove removes the mark with identity id and drops its domain
// contributions. Like Replace, it fails if p has no such mark.
func (p *Plot) Remove(id MarkID) error {
	if err := p.check("Remove"); err != nil {
		return err
	}
	for i := range p.marks {
		if p.marks[i].id == id {
			p.marks = append(p.marks[:i], p.marks[i+1:]...)
			return p.Unregister(id)
		}
	}
	return fmt.Errorf("no mark with id %d", id)
}

func (p *Plot) newID() MarkID {
	r := p.reg
	r.next++
	return r.next
}

// RegisterDomain records dom as mark id's contribution to channel ch.
// It replaces any previous contribution by the same mark to the same
// channel.
func (p *Plot) RegisterDomain(id MarkID, ch Channel, dom Domain) error {
	if err := p.check("RegisterDomain"); err != nil {
		return err
	}
	r := p.reg
	m, ok := r.domains[id]
	if !ok {
		m = make(map[Channel]Domain)
		r.domains[id] = m
		r.order = append(r.order, id)
	}
	m[ch] = dom
	return nil
}

// Unregister drops every contribution registered by mark id.
func (p *Plot) Unregister(id MarkID) error {
	if err := p.check("Unregister"); err != nil {
		return err
	}
	r := p.reg
	if _, ok := r.domains[id]; !ok {
		return nil
	}
	delete(r.domains, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// MergedDomain returns the union of all domains registered for ch.
// Marks contribute in the order they first registered. If nothing is
// registered for ch, the result is the empty Continuous.
func (p *Plot) MergedDomain(ch Channel) (Domain, error) {
	if err := p.check("MergedDomain"); err != nil {
		return nil, err
	}
	var conts []Continuous
	var discs []Discrete
	for _, id := range p.reg.order {
		switch d := p.reg.domains[id][ch].(type) {
		case Continuous:
			conts = append(conts, d)
		case Discrete:
			discs = append(discs, d)
		}
	}
	switch {
	case len(discs) == 0:
		return MergeContinuous(conts...), nil
	case len(conts) == 0:
		return MergeDiscrete(discs...), nil
	}
	return nil, &DomainKindError{ch}
}

// Scale returns the scale that ch is mapped through. Secondary
// channels share a scale with their primary channel: X2 and DX use
// the X scale, Height and DY use the Y scale, and Stroke uses the
// Color scale.
//
// Scales passed to WithScale take precedence, and apply unchanged in
// every facet cell. Otherwise, X maps the merged domain onto
// [0, width] and Y maps it onto [height, 0], so that the minimum of
// the domain is at the bottom. For a facet cell, width and height
// are the cell's own. Color uses
// NewColorScale. Scale returns a nil Scale for channels without a
// scale, including Color with no registered data.
func (p *Plot) Scale(ch Channel) (Scale, error) {
	if err := p.check("Scale"); err != nil {
		return nil, err
	}
	root := p.root
	ch = scaleChannel(ch)
	if s, ok := root.scales[ch]; ok {
		return s, nil
	}

	var rng [2]float64
	switch ch {
	case X:
		rng = [2]float64{0, p.width}
	case Y:
		rng = [2]float64{p.height, 0}
	case Color:
	default:
		return nil, nil
	}

	dom, err := p.MergedDomain(ch)
	if err != nil {
		return nil, err
	}
	if ch == Color {
		if dom.Empty() {
			return nil, nil
		}
		return NewColorScale(dom), nil
	}
	switch dom := dom.(type) {
	case Discrete:
		return NewOrdinalScale(dom, rng), nil
	case Continuous:
		return NewLinearScale(dom, rng), nil
	}
	panic("unreachable")
}

// Ticks returns at most max tick positions for the continuous scale
// of ch, or nil if ch's scale is not a LinearScale.
func (p *Plot) Ticks(ch Channel, max int) ([]float64, error) {
	s, err := p.Scale(ch)
	if err != nil {
		return nil, err
	}
	if ls, ok := s.(*LinearScale); ok {
		return ls.Ticks(max), nil
	}
	return nil, nil
}

// Draw registers the domains of every mark in p and its facet cells,
// and then resolves every mark. All registrations happen before any
// mark is resolved, so every mark sees scales that reflect the whole
// plot.
//
// Draw may be called repeatedly; each call re-registers every mark,
// replacing its previous contributions.
func (p *Plot) Draw() ([]Shape, error) {
	if err := p.check("Draw"); err != nil {
		return nil, err
	}
	if err := p.register(); err != nil {
		return nil, err
	}
	return p.resolve()
}

func (p *Plot) register() error {
	for _, e := range p.marks {
		if err := e.mark.Register(p, e.id); err != nil {
			return err
		}
	}
	for _, c := range p.cells {
		if err := c.plot.register(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plot) resolve() ([]Shape, error) {
	var shapes []Shape
	for _, e := range p.marks {
		ss, err := e.mark.Resolve(p)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, ss...)
	}
	for _, c := range p.cells {
		ss, err := c.plot.resolve()
		if err != nil {
			return nil, err
		}
		x, y, _, _ := c.Layout()
		for _, s := range ss {
			shapes = append(shapes, s.Translate(x, y))
		}
	}
	return shapes, nil
}

// Dispose releases p. All registered domains are dropped and any
// further operation on p, or on a facet cell of p, fails with a
// ContextNotFoundError. Disposing a facet cell disposes its whole
// plot.
func (p *Plot) Dispose() {
	if p == nil {
		return
	}
	p.reg.domains = nil
	p.reg.order = nil
	p.reg.disposed = true
	p.marks = nil
	p.cells = nil
}

type plotKey struct{}

// NewContext returns a copy of ctx that carries p.
func NewContext(ctx context.Context, p *Plot) context.Context {
	return context.WithValue(ctx, plotKey{}, p)
}

// FromContext returns the Plot carried by ctx. It returns a
// ContextNotFoundError if ctx carries no Plot or the Plot has been
// disposed.
func FromContext(ctx context.Context) (*Plot, error) {
	p, _ := ctx.Value(plotKey{}).(*Plot)
	if err := p.check("FromContext"); err != nil {
		return nil, err
	}
	return p, nil
}
