// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"reflect"

	"github.com/aclements/go-gg/table"
)

// FromTable converts the rows of g to a Dataset. Rows of each group
// are appended in the order of g.Tables(). Each Datum has one field
// per column.
func FromTable(g table.Grouping) Dataset {
	cols := g.Columns()
	var data Dataset
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		seqs := make([]reflect.Value, len(cols))
		for i, col := range cols {
			seqs[i] = reflect.ValueOf(t.Column(col))
		}
		for row := 0; row < t.Len(); row++ {
			d := make(Datum, len(cols))
			for i, col := range cols {
				d[col] = seqs[i].Index(row).Interface()
			}
			data = append(data, d)
		}
	}
	return data
}
