// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"github.com/aclements/go-gg/gg/layout"
)

// GroupBy partitions data by the categorical fields x and y. Either
// or both may be "".
//
// The result is a grid. If both x and y are given, there is one row
// per distinct value of x and one cell per distinct value of y, both
// in order of first appearance. Each cell holds the first record with
// that x and y value, or is empty if there is no such record; cells
// are never omitted, so cell j of every row corresponds to the jth
// distinct value of y.
//
// If only one of x and y is given, there is one row per distinct value
// of that field, and each row has a single cell holding every record
// with that value. If neither is given, the result is a single row
// with a single cell holding all of data.
//
// Records that lack a grouping field don't contribute a value for
// that field. GroupBy panics if a field's values are not comparable.
func GroupBy(data Dataset, x, y string) [][]Dataset {
	switch {
	case x != "" && y != "":
		xs, ys := levels(data, x), levels(data, y)
		grid := make([][]Dataset, len(xs))
		for i, xv := range xs {
			row := make([]Dataset, len(ys))
			for j, yv := range ys {
				row[j] = Dataset{}
				for _, d := range data {
					if has(d, x, xv) && has(d, y, yv) {
						row[j] = Dataset{d}
						break
					}
				}
			}
			grid[i] = row
		}
		return grid

	case x != "" || y != "":
		field := x
		if field == "" {
			field = y
		}
		vals := levels(data, field)
		grid := make([][]Dataset, len(vals))
		for i, v := range vals {
			cell := Dataset{}
			for _, d := range data {
				if has(d, field, v) {
					cell = append(cell, d)
				}
			}
			grid[i] = []Dataset{cell}
		}
		return grid
	}
	return [][]Dataset{{data}}
}

// levels returns the distinct values of field in data in order of
// first appearance.
func levels(data Dataset, field string) Discrete {
	vals := make([]interface{}, 0, len(data))
	for _, d := range data {
		if v, ok := d[field]; ok && v != nil {
			vals = append(vals, v)
		}
	}
	return nub(vals)
}

func has(d Datum, field string, v interface{}) bool {
	x, ok := d[field]
	return ok && x == v
}

// FacetGap is the horizontal space left between facet columns.
const FacetGap = 10

// A facetCell is one sub-plot of a facet grid, placed by the grid
// layout.
type facetCell struct {
	layout.Leaf
	plot *Plot
}

func (*facetCell) SizeHint() (w, h float64, flexw, flexh bool) {
	return 0, 0, true, true
}

// Facet splits p's data with GroupBy(p.Data(), x, y) and calls fn for
// each cell of the resulting grid with a sub-plot over that cell's
// data. Row i of the grid becomes column i of the facet layout, and
// cell j of a row is stacked vertically within that column. Columns
// share p's width equally, and cells share the column's height.
//
// Each sub-plot is FacetGap narrower than its column. Sub-plots share
// p's domains, so marks added to them contribute to the whole plot,
// but each maps those domains onto its own width and height. When p
// is drawn, the shapes of each sub-plot are offset to its position in
// p.
//
// Calling Facet again replaces the previous cells and drops their
// marks' contributions.
func (p *Plot) Facet(x, y string, fn func(row, col int, cell *Plot) error) error {
	if err := p.check("Facet"); err != nil {
		return err
	}
	for _, c := range p.cells {
		c.plot.unregisterAll()
	}
	p.cells = nil

	grid := GroupBy(p.data, x, y)
	var g layout.Grid
	cells := make([][]*facetCell, len(grid))
	for i, row := range grid {
		for j, data := range row {
			c := &facetCell{plot: &Plot{data: data, root: p.root, reg: p.reg}}
			g.Add(c, i, j, 1, 1)
			cells[i] = append(cells[i], c)
		}
	}
	g.SetLayout(0, 0, p.width, p.height)

	for i, row := range cells {
		for j, c := range row {
			_, _, w, h := c.Layout()
			c.plot.width, c.plot.height = math.Max(w-FacetGap, 0), h
			p.cells = append(p.cells, c)
			if err := fn(i, j, c.plot); err != nil {
				return err
			}
		}
	}
	return nil
}

// unregisterAll drops the contributions of every mark in p and its
// facet cells.
func (p *Plot) unregisterAll() {
	for _, e := range p.marks {
		p.Unregister(e.id)
	}
	for _, c := range p.cells {
		c.plot.unregisterAll()
	}
}
