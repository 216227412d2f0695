// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestFromTable(t *testing.T) {
	tab := new(table.Builder).
		Add("n", []int{1, 2, 3}).
		Add("s", []string{"a", "b", "a"}).
		Done()

	got := FromTable(tab)
	want := Dataset{
		{"n": 1, "s": "a"},
		{"n": 2, "s": "b"},
		{"n": 3, "s": "a"},
	}
	if !de(got, want) {
		t.Errorf("want %v; got %v", want, got)
	}

	// Grouped tables flatten to one record per row.
	if got := FromTable(table.GroupBy(tab, "s")); len(got) != 3 {
		t.Errorf("grouped: want 3 records; got %d", len(got))
	}

	if got := FromTable(new(table.Table)); len(got) != 0 {
		t.Errorf("empty table: want no records; got %v", got)
	}
}

func TestFromTableDomain(t *testing.T) {
	tab := new(table.Builder).Add("v", []float64{4, -1, 2}).Done()
	data := FromTable(tab)
	if got := ComputeDomain(data, DataFunc(Field("v"), nil)); got != (Continuous{-1, 4}) {
		t.Errorf("want [-1,4]; got %v", got)
	}
}
